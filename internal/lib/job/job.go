// Package job provides background job processing using Asynq,
// a Redis-backed queue: tasks are enqueued with asynq.Client and
// processed by the workers of an asynq.Server.
package job

import (
	"context"
	"fmt"

	"github.com/eximroyals/backend/internal/config"
	"github.com/eximroyals/backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client

	server      *asynq.Server
	logger      *zerolog.Logger
	emailClient enquiryMailer
	recipient   string
	enabled     bool
}

// enquiryMailer is the part of the email client the handlers use.
type enquiryMailer interface {
	SendEnquiryNotification(to string, data email.EnquiryNotificationData) error
}

// NewJobService creates the client and the worker server. Queue weights
// give "critical" tasks the largest worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client:    asynq.NewClient(redisOpt),
		server:    server,
		logger:    logger,
		recipient: cfg.Notification.Recipient,
		enabled:   cfg.Notification.Enabled,
	}
}

// Start registers task handlers and starts the workers in the background.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskEnquiryNotification, j.handleEnquiryNotificationTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}
	return nil
}

// Stop shuts the workers down and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// NotifyEnquiry enqueues the owner notification for a new enquiry.
// It is a no-op when notifications are disabled.
func (j *JobService) NotifyEnquiry(ctx context.Context, payload EnquiryNotificationPayload) error {
	if !j.enabled {
		return nil
	}

	task, err := NewEnquiryNotificationTask(payload)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue enquiry notification: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Int64("enquiry_id", payload.EnquiryID).
		Msg("enquiry notification enqueued")
	return nil
}
