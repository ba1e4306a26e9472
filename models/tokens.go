package models

// TokenRegistration is a user's set of FCM device tokens, stored at
// users/{uid}/private/tokens. One entry per installed device instance.
type TokenRegistration struct {
	FCMTokens []string `firestore:"fcmTokens" json:"fcmTokens"`
}
