package models

import "time"

// Audience determines which users receive a reminder's notification.
type Audience string

const (
	// AudienceSelf targets only the reminder's creator.
	AudienceSelf Audience = "self"
	// AudienceAllParticipants targets every member of the associated list.
	AudienceAllParticipants Audience = "all-participants"
)

// Reminder is a scheduled notification intent attached to a list.
type Reminder struct {
	ID            string    `firestore:"-" json:"id"`
	ListID        string    `firestore:"listId" json:"listId"`
	Title         string    `firestore:"title" json:"title"`
	Description   string    `firestore:"description,omitempty" json:"description,omitempty"`
	ScheduledTime time.Time `firestore:"scheduledTime" json:"scheduledTime"`
	Audience      Audience  `firestore:"audience" json:"audience"`
	CreatedBy     string    `firestore:"createdBy" json:"createdBy"`
	IsActive      bool      `firestore:"isActive" json:"isActive"`
	NotifiedUsers []string  `firestore:"notifiedUsers" json:"notifiedUsers"`
}

// AlreadyNotified reports whether the given user has been recorded
// as notified for this reminder.
func (r *Reminder) AlreadyNotified(userID string) bool {
	for _, id := range r.NotifiedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
