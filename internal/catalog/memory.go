package catalog

import (
	"context"
	"sync"
	"time"
)

// MemoryProvider is an in-memory Provider and OccupancyStore. It backs the
// server when no database is configured and is the fixture provider for
// tests.
type MemoryProvider struct {
	mu        sync.RWMutex
	flights   map[string]*Flight
	occupancy map[string][]SeatStatus // keyed by flightID + "/" + scheduleID
}

// NewMemoryProvider creates an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		flights:   make(map[string]*Flight),
		occupancy: make(map[string][]SeatStatus),
	}
}

// NewSampleProvider creates a MemoryProvider preloaded with demo flights.
func NewSampleProvider() *MemoryProvider {
	p := NewMemoryProvider()
	now := time.Now()

	p.AddFlight(&Flight{
		ID:            "VN1546",
		AirlineName:   "Vietnam Airlines",
		FlightNumber:  "VN1546",
		Origin:        "Ho Chi Minh City (SGN)",
		Destination:   "Ha Noi (HAN)",
		DepartureTime: now.Add(24 * time.Hour),
		ArrivalTime:   now.Add(26 * time.Hour),
		Classes: []FlightClass{
			{ClassName: "Business", Price: 5200000, AvailableSeats: 16},
			{ClassName: "Premium Economy", Price: 2800000, AvailableSeats: 24},
			{ClassName: "Economy", Price: 1500000, AvailableSeats: 120},
		},
		UpcomingSchedules: []Schedule{
			{ID: "VN1546-1", DepartureTime: now.Add(24 * time.Hour), ArrivalTime: now.Add(26 * time.Hour), RemainingSeats: 160, CurrentPrice: 1500000},
			{ID: "VN1546-2", DepartureTime: now.Add(48 * time.Hour), ArrivalTime: now.Add(50 * time.Hour), RemainingSeats: 160, CurrentPrice: 1450000},
		},
	})

	p.AddFlight(&Flight{
		ID:            "VJ320",
		AirlineName:   "VietJet Air",
		FlightNumber:  "VJ320",
		Origin:        "Da Nang (DAD)",
		Destination:   "Ho Chi Minh City (SGN)",
		DepartureTime: now.Add(12 * time.Hour),
		ArrivalTime:   now.Add(13*time.Hour + 25*time.Minute),
		Classes: []FlightClass{
			{ClassName: "Business", Price: 3600000, AvailableSeats: 12},
			{ClassName: "Economy", Price: 990000, AvailableSeats: 168},
		},
		Schedule: &Schedule{
			ID: "VJ320-1", DepartureTime: now.Add(12 * time.Hour), ArrivalTime: now.Add(13*time.Hour + 25*time.Minute), RemainingSeats: 180, CurrentPrice: 990000,
		},
	})

	return p
}

// AddFlight registers a flight, replacing any previous flight with the
// same ID.
func (p *MemoryProvider) AddFlight(f *Flight) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flights[f.ID] = f
}

func (p *MemoryProvider) GetFlightByID(ctx context.Context, id string) (*Flight, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	f, ok := p.flights[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (p *MemoryProvider) GetSeatMap(ctx context.Context, flightID, scheduleID string) ([]SeatStatus, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if _, ok := p.flights[flightID]; !ok {
		return nil, ErrNotFound
	}
	snapshot := p.occupancy[flightID+"/"+scheduleID]
	out := make([]SeatStatus, len(snapshot))
	copy(out, snapshot)
	return out, nil
}

func (p *MemoryProvider) PutSeatStatuses(ctx context.Context, flightID, scheduleID string, seats []SeatStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.flights[flightID]; !ok {
		return ErrNotFound
	}
	key := flightID + "/" + scheduleID
	current := p.occupancy[key]

	merged := make([]SeatStatus, 0, len(current)+len(seats))
	replaced := make(map[string]bool, len(seats))
	for _, s := range seats {
		replaced[s.SeatNumber] = true
	}
	for _, s := range current {
		if !replaced[s.SeatNumber] {
			merged = append(merged, s)
		}
	}
	merged = append(merged, seats...)
	p.occupancy[key] = merged
	return nil
}
