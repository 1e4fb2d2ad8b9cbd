package service

import (
	"context"
)

// TruckLocationEvent is published when a truck opens at a new current location.
// The notifier worker consumes it and pushes to subscribers within range.
type TruckLocationEvent struct {
	RequestID     string   `json:"request_id,omitempty"` // API request that caused the event
	EventID       string   `json:"event_id"`
	TruckID       string   `json:"truck_id"`
	TruckName     string   `json:"truck_name"`
	LocationID    string   `json:"location_id"`
	Address       string   `json:"address,omitempty"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	SubscriberIDs []string `json:"subscriber_ids"` // Users who favorited the truck with push enabled
}

// EventPublisher hands arrival events to the notifier. Callers treat a publish
// error as non-fatal: the location write has already committed.
type EventPublisher interface {
	PublishTruckLocationEvent(ctx context.Context, event *TruckLocationEvent) error
	Close() error
}
