package models

import "time"

// Invitation asks a user to join a shared list. Creating one triggers a
// push notification to the recipient via the async worker.
type Invitation struct {
	ID          string    `firestore:"-" json:"id"`
	ListID      string    `firestore:"listId" json:"listId"`
	ListName    string    `firestore:"listName" json:"listName"`
	SenderName  string    `firestore:"senderName" json:"senderName"`
	RecipientID string    `firestore:"recipientId" json:"recipientId"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// InvitationNotifyPayload is the task payload handed to the invitation
// notification worker.
type InvitationNotifyPayload struct {
	InvitationID string `json:"invitationId"`
	ListID       string `json:"listId"`
	ListName     string `json:"listName"`
	SenderName   string `json:"senderName"`
	RecipientID  string `json:"recipientId"`
}
