package models

// Push message types carried in the data payload so clients can route taps.
const (
	NotificationTypeReminderDue    = "reminder_due"
	NotificationTypeListInvitation = "list_invitation"
)

// PushMessage is a single push notification addressed to one device token.
type PushMessage struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}
