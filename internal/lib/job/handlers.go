package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eximroyals/backend/internal/config"
	"github.com/eximroyals/backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// InitHandlers builds the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

// handleEnquiryNotificationTask mails the site owner about a new enquiry.
// Returning an error makes asynq retry the task.
func (j *JobService) handleEnquiryNotificationTask(ctx context.Context, t *asynq.Task) error {
	var p EnquiryNotificationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal enquiry notification payload: %w", err)
	}

	logger := j.logger.With().
		Str("type", "enquiry_notification").
		Int64("enquiry_id", p.EnquiryID).
		Logger()

	logger.Info().Msg("processing enquiry notification task")

	err := j.emailClient.SendEnquiryNotification(j.recipient, email.EnquiryNotificationData{
		Name:       p.Name,
		Email:      p.Email,
		Country:    p.Country,
		Product:    p.ProductTitle,
		Message:    p.Message,
		ReceivedAt: p.ReceivedAt.Format("2006-01-02 15:04:05 MST"),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to send enquiry notification")
		return err
	}

	logger.Info().Msg("enquiry notification sent")
	return nil
}
