package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/booking"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/fare"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/seatmap"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/websocket"
)

// ErrReadOnlyCatalog is returned when an occupancy update is pushed but
// the configured catalog cannot absorb it.
var ErrReadOnlyCatalog = errors.New("catalog does not accept occupancy updates")

// QuoteRequest is the §6 request shape: everything needed to price a
// booking in one call.
type QuoteRequest struct {
	FlightID      string               `json:"flightId"`
	ScheduleID    string               `json:"scheduleId,omitempty"`
	CabinClass    string               `json:"cabinClass,omitempty"`
	Passengers    fare.PassengerCounts `json:"passengers"`
	AddOns        fare.AddOns          `json:"addOns"`
	SeatSelection []string             `json:"seatSelection,omitempty"`
}

// QuoteResponse echoes the validated selection with the fare breakdown.
type QuoteResponse struct {
	QuoteID       string               `json:"quoteId"`
	FlightID      string               `json:"flightId"`
	ScheduleID    string               `json:"scheduleId"`
	CabinClass    string               `json:"cabinClass"`
	Passengers    fare.PassengerCounts `json:"passengers"`
	AddOns        fare.AddOns          `json:"addOns"`
	SeatSelection []string             `json:"seatSelection"`
	Fare          fare.Breakdown       `json:"fare"`
}

// SeatInfo is one renderable seat of a synthesized seat map.
type SeatInfo struct {
	SeatNumber string `json:"seatNumber"`
	Row        int    `json:"row"`
	Column     string `json:"column"`
	Price      int64  `json:"price"`
	Occupied   bool   `json:"occupied"`
}

// CabinSeatMap is the synthesized layout of one cabin class.
type CabinSeatMap struct {
	ClassName    string     `json:"className"`
	StartRow     int        `json:"startRow"`
	EndRow       int        `json:"endRow"`
	ColumnGroups [][]string `json:"columnGroups"`
	Seats        []SeatInfo `json:"seats"`
}

// SeatMapResponse is the full seat map of a flight schedule.
type SeatMapResponse struct {
	FlightID   string         `json:"flightId"`
	ScheduleID string         `json:"scheduleId"`
	Cabins     []CabinSeatMap `json:"cabins"`
}

// QuoteService prices bookings and serves synthesized seat maps.
type QuoteService interface {
	GetFlight(ctx context.Context, flightID string) (*catalog.Flight, error)
	GetSeatMap(ctx context.Context, flightID, scheduleID string) (*SeatMapResponse, error)
	GetOccupancy(ctx context.Context, flightID, scheduleID string) ([]catalog.SeatStatus, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	UpdateOccupancy(ctx context.Context, flightID, scheduleID string, seats []catalog.SeatStatus) error
}

// quoteServiceImpl implements QuoteService
type quoteServiceImpl struct {
	provider catalog.Provider
	store    catalog.OccupancyStore
	hub      *websocket.Hub
	pricing  fare.PricingConfig
}

// NewQuoteService creates a QuoteService. store and hub may be nil when
// the catalog is read-only or no live push is wanted.
func NewQuoteService(provider catalog.Provider, store catalog.OccupancyStore, hub *websocket.Hub, pricing fare.PricingConfig) QuoteService {
	return &quoteServiceImpl{
		provider: provider,
		store:    store,
		hub:      hub,
		pricing:  pricing,
	}
}

func (s *quoteServiceImpl) GetFlight(ctx context.Context, flightID string) (*catalog.Flight, error) {
	return s.provider.GetFlightByID(ctx, flightID)
}

func (s *quoteServiceImpl) GetSeatMap(ctx context.Context, flightID, scheduleID string) (*SeatMapResponse, error) {
	flight, err := s.provider.GetFlightByID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	scheduleID, err = resolveScheduleID(flight, scheduleID)
	if err != nil {
		return nil, err
	}

	res := booking.FetchOccupancy(ctx, s.provider, flightID, scheduleID, booking.DefaultFetchTimeout, booking.FailOpen)
	if res.Err != nil {
		log.Printf("seat map: occupancy fetch failed for %s/%s, serving fail-open: %v", flightID, scheduleID, res.Err)
	}

	conv := seatmap.ConventionFor(flight.AirlineName)
	layouts := seatmap.Plan(conv, classInventories(flight.Classes))

	out := &SeatMapResponse{FlightID: flightID, ScheduleID: scheduleID}
	for _, l := range layouts {
		cabin := CabinSeatMap{
			ClassName:    l.Class.String(),
			StartRow:     l.StartRow,
			EndRow:       l.EndRow,
			ColumnGroups: l.ColumnGroups,
		}
		for _, code := range l.SeatCodes() {
			row, col, _ := seatmap.ParseSeatCode(code)
			price, _ := seatmap.Price(code)
			cabin.Seats = append(cabin.Seats, SeatInfo{
				SeatNumber: code,
				Row:        row,
				Column:     col,
				Price:      price,
				Occupied:   res.Snapshot.Occupied(code),
			})
		}
		out.Cabins = append(out.Cabins, cabin)
	}
	return out, nil
}

// classInventories maps catalog classes onto the closed cabin catalog,
// skipping names outside it.
func classInventories(classes []catalog.FlightClass) []seatmap.ClassInventory {
	inv := make([]seatmap.ClassInventory, 0, len(classes))
	for _, fc := range classes {
		class, err := seatmap.ParseCabinClass(fc.ClassName)
		if err != nil {
			log.Printf("seat map: skipping unknown cabin class %q", fc.ClassName)
			continue
		}
		inv = append(inv, seatmap.ClassInventory{Class: class, Seats: fc.AvailableSeats})
	}
	return inv
}

// resolveScheduleID validates a requested schedule against the flight, or
// falls back the way the booking controller does when none is requested.
func resolveScheduleID(flight *catalog.Flight, scheduleID string) (string, error) {
	if scheduleID == "" {
		if flight.Schedule != nil {
			return flight.Schedule.ID, nil
		}
		if len(flight.UpcomingSchedules) > 0 {
			return flight.UpcomingSchedules[0].ID, nil
		}
		return flight.ID, nil
	}
	if flight.Schedule != nil && flight.Schedule.ID == scheduleID {
		return scheduleID, nil
	}
	for _, sch := range flight.UpcomingSchedules {
		if sch.ID == scheduleID {
			return scheduleID, nil
		}
	}
	if scheduleID == flight.ID {
		return scheduleID, nil
	}
	return "", fmt.Errorf("schedule %s: %w", scheduleID, catalog.ErrNotFound)
}

// GetOccupancy returns the raw occupancy snapshot for a flight schedule,
// fail-open on fetch errors.
func (s *quoteServiceImpl) GetOccupancy(ctx context.Context, flightID, scheduleID string) ([]catalog.SeatStatus, error) {
	flight, err := s.provider.GetFlightByID(ctx, flightID)
	if err != nil {
		return nil, err
	}
	scheduleID, err = resolveScheduleID(flight, scheduleID)
	if err != nil {
		return nil, err
	}
	seats, err := s.provider.GetSeatMap(ctx, flightID, scheduleID)
	if err != nil {
		log.Printf("occupancy: fetch failed for %s/%s, serving fail-open: %v", flightID, scheduleID, err)
		return []catalog.SeatStatus{}, nil
	}
	return seats, nil
}

// Quote runs a full booking-options session server-side: resolve the
// schedule, apply passengers, class and add-ons, replay the seat
// selection against the live occupancy snapshot, and return the fare.
func (s *quoteServiceImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	ctrl := booking.NewController(s.provider, s.pricing)
	if err := ctrl.Start(ctx, req.FlightID); err != nil {
		return nil, err
	}
	if req.ScheduleID != "" {
		if _, err := ctrl.SelectSchedule(req.ScheduleID); err != nil {
			return nil, err
		}
	}
	if _, err := ctrl.SetPassengers(req.Passengers); err != nil {
		return nil, err
	}
	if req.CabinClass != "" {
		if _, err := ctrl.SelectCabinClass(req.CabinClass); err != nil {
			return nil, err
		}
	}
	if _, err := ctrl.SetAddOns(req.AddOns); err != nil {
		return nil, err
	}

	if err := ctrl.OpenSeatSelector(ctx); err != nil {
		// Fail-open: the quote proceeds with the fallback snapshot.
		log.Printf("quote: occupancy fetch failed for %s, continuing fail-open: %v", req.FlightID, err)
	}

	for _, code := range req.SeatSelection {
		if _, _, err := seatmap.ParseSeatCode(code); err != nil {
			return nil, err
		}
		if _, err := ctrl.ToggleSeat(code); err != nil {
			return nil, fmt.Errorf("seat %s: %w", strings.ToUpper(code), err)
		}
	}

	breakdown, err := ctrl.Fare()
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		QuoteID:       uuid.New().String()[:8],
		FlightID:      req.FlightID,
		ScheduleID:    ctrl.Schedule().ID,
		CabinClass:    ctrl.CabinClass(),
		Passengers:    req.Passengers,
		AddOns:        req.AddOns,
		SeatSelection: ctrl.SelectedSeats(),
		Fare:          breakdown,
	}, nil
}

// UpdateOccupancy absorbs an occupancy push from the booking backend and
// fans it out to seat-map watchers.
func (s *quoteServiceImpl) UpdateOccupancy(ctx context.Context, flightID, scheduleID string, seats []catalog.SeatStatus) error {
	if s.store == nil {
		return ErrReadOnlyCatalog
	}
	if err := s.store.PutSeatStatuses(ctx, flightID, scheduleID, seats); err != nil {
		return fmt.Errorf("failed to store occupancy: %w", err)
	}
	if s.hub != nil {
		s.hub.BroadcastOccupancy(flightID, scheduleID, seats)
	}
	return nil
}
