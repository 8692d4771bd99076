package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a flight or schedule does not exist.
	ErrNotFound = errors.New("not found")
)

// Provider is the flight-catalog collaborator the engine consumes. The
// engine performs no network I/O of its own; implementations do.
type Provider interface {
	// GetFlightByID returns the flight with its class inventory and
	// schedules.
	GetFlightByID(ctx context.Context, id string) (*Flight, error)

	// GetSeatMap returns the occupancy snapshot for a flight schedule.
	// An empty snapshot means every seat is available, not an error.
	GetSeatMap(ctx context.Context, flightID, scheduleID string) ([]SeatStatus, error)
}

// OccupancyStore is implemented by providers that can absorb occupancy
// updates pushed from the booking backend.
type OccupancyStore interface {
	// PutSeatStatuses records or replaces the status of the given seats
	// for a flight schedule.
	PutSeatStatuses(ctx context.Context, flightID, scheduleID string, seats []SeatStatus) error
}
