package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/services/reminder"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/utils"

	appointmentRepo "github.com/muhammadsaqibb/Barbar-shop-app-proj-main/database/repository/appointment"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(appts appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(reminder.TypeAppointmentReminder, handleReminderTask(appts))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a due reminder. The appointment is re-read at
// fire time so reminders for cancelled or completed visits are dropped.
func handleReminderTask(appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		appt, err := appts.GetByID(p.ShopID, p.AppointmentID)
		if err != nil {
			logger.Warn("reminder target no longer exists",
				zap.String("appointmentID", p.AppointmentID), zap.Error(err))
			return nil
		}
		if appt.Status != models.StatusConfirmed {
			logger.Info("skipping reminder for inactive appointment",
				zap.String("appointmentID", appt.ID), zap.String("status", appt.Status))
			return nil
		}

		logger.Info("appointment reminder due",
			zap.String("appointmentID", appt.ID),
			zap.String("clientName", p.ClientName),
			zap.String("date", p.Date),
			zap.String("time", p.Time))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
