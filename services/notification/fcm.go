package notification

import (
	"context"
	"fmt"

	"grocli/models"

	"firebase.google.com/go/v4/messaging"
)

// FCMMessenger is the production Messenger backed by Firebase Cloud Messaging.
type FCMMessenger struct {
	Client *messaging.Client
}

func NewFCMMessenger(client *messaging.Client) (*FCMMessenger, error) {
	if client == nil {
		return nil, fmt.Errorf("fcm messenger initialization error: messaging client is nil")
	}
	return &FCMMessenger{Client: client}, nil
}

func (m *FCMMessenger) Send(ctx context.Context, msg models.PushMessage) error {
	fcmMsg := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := m.Client.Send(ctx, fcmMsg); err != nil {
		if messaging.IsUnregistered(err) {
			return ErrUnregisteredToken
		}
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}

func (m *FCMMessenger) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*MulticastResult, error) {
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	resp, err := m.Client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("fcm multicast send failed: %w", err)
	}

	result := &MulticastResult{SuccessCount: resp.SuccessCount}
	for i, r := range resp.Responses {
		if r.Error != nil && messaging.IsUnregistered(r.Error) {
			result.Unregistered = append(result.Unregistered, tokens[i])
		}
	}
	return result, nil
}
