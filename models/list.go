package models

// List is a named collection with an owner and a set of participants.
// The dispatch pipeline reads lists only to expand an "all-participants"
// audience; it never mutates them.
type List struct {
	ID             string   `firestore:"-" json:"id"`
	Name           string   `firestore:"name" json:"name"`
	OwnerID        string   `firestore:"ownerId" json:"ownerId"`
	ParticipantIDs []string `firestore:"participantIds" json:"participantIds"`
}
