package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"alcahub/config"
	"alcahub/models"
	orderSvc "alcahub/services/order"
	"alcahub/services/tasks"
	"alcahub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(orders orderSvc.OrderService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	// Sweep stale pending orders in the background.
	go runExpirySweep(orders)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	// No push provider is wired; the reminder lands in the log stream for now.
	utils.GetLogger().Info("booking reminder fired",
		zap.String("orderID", p.OrderID),
		zap.String("userID", p.UserID),
		zap.String("title", p.Title),
		zap.String("body", p.Body))
	return nil
}

// runExpirySweep periodically cancels pendente orders that sat unconfirmed for
// longer than the configured age.
func runExpirySweep(orders orderSvc.OrderService) {
	maxAge := time.Duration(config.AppConfig.PendingOrderMaxAgeH) * time.Hour
	if maxAge <= 0 {
		maxAge = 48 * time.Hour
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		expired, err := orders.ExpireStalePending(context.Background(), maxAge)
		if err != nil {
			utils.GetLogger().Error("stale order sweep failed", zap.Error(err))
			continue
		}
		if expired > 0 {
			utils.GetLogger().Info("expired stale pending orders", zap.Int("count", expired))
		}
	}
}
