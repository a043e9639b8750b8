package email

import "embed"

// Template names an HTML template under templates/.
type Template string

const (
	// TemplateEnquiryNotification corresponds to templates/enquiry_notification.html
	TemplateEnquiryNotification Template = "enquiry_notification"
)

//go:embed templates/*.html
var templateFS embed.FS
