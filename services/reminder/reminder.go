// Package reminder enqueues delayed appointment-reminder tasks on the asynq
// queue consumed by cron.InitReminderWorker.
package reminder

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/config"
	"github.com/muhammadsaqibb/Barbar-shop-app-proj-main/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "reminder:appointment"

// Scheduler queues a reminder ahead of a confirmed appointment.
type Scheduler interface {
	Schedule(appt *models.Appointment) error
}

// AsynqScheduler enqueues reminder tasks on redis.
type AsynqScheduler struct {
	Client *asynq.Client
}

func NewAsynqScheduler() *AsynqScheduler {
	return &AsynqScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// NewReminderTask builds a delayed task for the given payload.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// Schedule queues a reminder to fire ahead of the appointment time. Slots in
// the past, or closer than the configured lead, are skipped silently.
func (s *AsynqScheduler) Schedule(appt *models.Appointment) error {
	if s.Client == nil {
		return fmt.Errorf("asynq client is not initialised")
	}

	startAt, err := time.ParseInLocation(models.DateLayout+" "+models.TimeLayout, appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable appointment time %q %q: %w", appt.Date, appt.Time, err)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	if lead <= 0 {
		lead = 60 * time.Minute
	}
	fireAt := startAt.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		ShopID:        appt.ShopID,
		ClientID:      appt.ClientID,
		ClientName:    appt.ClientName,
		Date:          appt.Date,
		Time:          appt.Time,
		FireAt:        fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
