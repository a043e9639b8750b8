package email

import "fmt"

// EnquiryNotificationData is the data the enquiry_notification template expects.
type EnquiryNotificationData struct {
	Name       string
	Email      string
	Country    string
	Product    string
	Message    string
	ReceivedAt string
}

// SendEnquiryNotification tells the site owner that a customer enquiry arrived.
func (c *Client) SendEnquiryNotification(to string, data EnquiryNotificationData) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("New enquiry from %s", data.Name),
		TemplateEnquiryNotification,
		data,
	)
}
