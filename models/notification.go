package models

// Notification is one entry of the notification feed.
type Notification struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Time  string `json:"time"`
	Read  bool   `json:"read"`
}

// ReminderPayload is the asynq task body for a reservation reminder.
type ReminderPayload struct {
	SessionID string `json:"sessionId"`
	VenueName string `json:"venueName"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
