package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskEnquiryNotification is the task type routed to the notification handler.
const TaskEnquiryNotification = "email:enquiry_notification"

// EnquiryNotificationPayload is the JSON payload stored in Redis.
type EnquiryNotificationPayload struct {
	EnquiryID    int64     `json:"enquiry_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Country      string    `json:"country,omitempty"`
	ProductTitle string    `json:"product_title,omitempty"`
	Message      string    `json:"message"`
	ReceivedAt   time.Time `json:"received_at"`
}

// NewEnquiryNotificationTask serializes the payload into a retriable task.
func NewEnquiryNotificationTask(p EnquiryNotificationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEnquiryNotification,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
