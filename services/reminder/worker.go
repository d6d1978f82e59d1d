// File: services/reminder/worker.go
package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"consulta/config"
	"consulta/services/schedule"
	"consulta/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
// Delivered reminders go through the notifier.
func InitReminderWorker(notifier schedule.Notifier) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, handleSessionReminder(notifier))

	go func() {
		logger.Info("reminder worker: starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("reminder worker: failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker: max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleSessionReminder(notifier schedule.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p SessionReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder worker: invalid payload", zap.Error(err))
			return err
		}

		who := p.PatientName
		if who == "" {
			who = "a patient"
		}
		notifier.Notify(fmt.Sprintf("Upcoming session with %s at %s",
			who, p.StartsAt.Format("2006-01-02 15:04")))

		logger.Info("reminder worker: delivered",
			zap.String("sessionId", p.SessionID), zap.Time("startsAt", p.StartsAt))
		return nil
	}
}
