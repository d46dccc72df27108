package cron

import (
	"encoding/json"
	"time"

	"fitapp/config"
	"fitapp/models"

	"github.com/hibiken/asynq"
)

// AsynqReminderScheduler enqueues reservation reminders an hour before the
// slot starts. Slots already closer than that fire immediately.
type AsynqReminderScheduler struct {
	client *asynq.Client
	now    func() time.Time
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
		now: time.Now,
	}
}

func (s *AsynqReminderScheduler) ScheduleReminder(p models.ReminderPayload) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeReservationReminder, payload)

	delay := time.Duration(0)
	if start, ok := slotStart(p.Date, p.Time); ok {
		if d := start.Add(-time.Hour).Sub(s.now()); d > 0 {
			delay = d
		}
	}
	_, err = s.client.Enqueue(task, asynq.ProcessIn(delay))
	return err
}

// slotStart parses the cart's display date ("2026/8/30") and the slot
// label ("06:00-07:00") into the slot's start time.
func slotStart(date, slot string) (time.Time, bool) {
	if len(slot) < 5 {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006/1/2 15:04", date+" "+slot[:5], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
