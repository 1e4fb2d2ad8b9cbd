package usecase

import (
	"context"

	"trucktrace/internal/domain/service"
)

// AlertResult summarizes the delivery of one truck location event.
type AlertResult struct {
	Recipients     int `json:"recipients"`
	Sent           int `json:"sent"`
	Failed         int `json:"failed"`
	InvalidRemoved int `json:"invalid_removed"`
}

// AlertUsecase fans truck location events out to subscriber devices.
type AlertUsecase interface {
	// ProcessTruckLocationEvent returns an error with HTTP code 503 when delivery should be retried.
	ProcessTruckLocationEvent(ctx context.Context, event *service.TruckLocationEvent) (*AlertResult, error)
}
