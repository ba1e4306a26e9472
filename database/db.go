package database

import "errors"

// Firestore collection and document names shared by the repositories.
const (
	CollReminders   = "reminders"
	CollLists       = "lists"
	CollUsers       = "users"
	CollInvitations = "invitations"

	// Per-user private subcollection holding the FCM token document.
	CollPrivate = "private"
	DocTokens   = "tokens"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")
