package service

import (
	"context"
)

// MaxPushBatchSize is the most device tokens one SendBatch call accepts.
const MaxPushBatchSize = 500

// PushMessage is what a device shows for one alert.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult counts the outcome of one multicast send. InvalidTokens lists
// tokens the provider reported as unregistered; their devices should be removed.
type BatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService pushes alerts to device tokens
type NotificationService interface {
	// SendBatch fails as a whole only when the provider could not be reached.
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)
}
