// File: services/reminder/reminder.go
package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"consulta/config"
	"consulta/models"

	"github.com/hibiken/asynq"
)

const TypeSessionReminder = "reminder:session"

// Lead time before the session start at which the reminder fires.
const reminderLead = 24 * time.Hour

// SessionReminderPayload is the task body for a scheduled reminder.
type SessionReminderPayload struct {
	SessionID   string    `json:"sessionId"`
	PatientName string    `json:"patientName"`
	StartsAt    time.Time `json:"startsAt"`
}

// Scheduler enqueues session reminders.
type Scheduler interface {
	ScheduleSessionReminder(ctx context.Context, sess models.Session) error
}

// AsynqScheduler enqueues reminders on the asynq queue.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler builds a scheduler against the reminder queue Redis DB.
func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleSessionReminder enqueues a reminder 24h before the session.
// Sessions starting sooner than the lead time get no reminder.
func (s *AsynqScheduler) ScheduleSessionReminder(ctx context.Context, sess models.Session) error {
	fireAt := sess.ScheduledFrom.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}
	payload, err := json.Marshal(SessionReminderPayload{
		SessionID:   sess.ID,
		PatientName: sess.PatientName,
		StartsAt:    sess.ScheduledFrom,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeSessionReminder, payload)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	return err
}

// Close releases the underlying queue client.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
