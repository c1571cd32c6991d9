package models

// ReminderPayload is the queued payload for a scheduled booking reminder.
type ReminderPayload struct {
	OrderID  string `json:"orderId"`
	UserID   string `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	FireDate string `json:"fireDate"`
}
