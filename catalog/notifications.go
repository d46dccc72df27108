package catalog

import (
	"sync"

	"fitapp/models"
)

// NotificationRepository serves the notification feed. Append and MarkRead
// mutate the in-memory feed; the reminder worker appends through this too.
type NotificationRepository interface {
	ListNotifications() []models.Notification
	Append(n models.Notification)
	MarkRead(id string) error
}

// MemoryNotificationRepo is the seeded in-memory notification repository.
// Guarded by a mutex: the reminder worker appends from its own goroutine.
type MemoryNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{
		notifications: []models.Notification{
			{ID: "n1", Title: "活動即將開始", Body: "週末籃球友誼賽 明天 14:00 開打，記得帶球鞋！", Time: "2 小時前"},
			{ID: "n2", Title: "預約成功", Body: "羽球A (A區) 的場地預約已確認。", Time: "昨天", Read: true},
			{ID: "n3", Title: "新課程上架", Body: "飛羽羽球學院開設雙打戰術班，名額有限。", Time: "3 天前"},
		},
	}
}

func (r *MemoryNotificationRepo) ListNotifications() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func (r *MemoryNotificationRepo) Append(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append([]models.Notification{n}, r.notifications...)
}

func (r *MemoryNotificationRepo) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}
