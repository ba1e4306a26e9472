package models

import "time"

// UserProfile mirrors an auth account into the users collection so that
// other documents can reference display data without touching the auth store.
type UserProfile struct {
	UID         string    `firestore:"uid" json:"uid"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName,omitempty" json:"displayName,omitempty"`
	PhotoURL    string    `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	LastSeen    time.Time `firestore:"lastSeen,serverTimestamp" json:"lastSeen"`
}

// AuthEvent is the payload delivered by the auth lifecycle webhook.
type AuthEvent struct {
	Type        string `json:"type" binding:"required"`
	UID         string `json:"uid" binding:"required"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

const (
	AuthEventUserCreated = "user.created"
	AuthEventUserDeleted = "user.deleted"
)
