package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/fare"
)

// DefaultFetchTimeout bounds the occupancy fetch so the seat selector
// never hangs on a dead collaborator.
const DefaultFetchTimeout = 5 * time.Second

// Controller orchestrates one booking-options session: the chosen
// schedule, cabin class, passengers, add-ons and seat selection. Every
// mutation recomputes the fare synchronously and returns the new
// breakdown, so callers never read stale totals.
//
// All state belongs to the controller and is guarded by its own mutex;
// the only asynchronous operation is the occupancy fetch, which is
// compare-and-dropped against the current schedule before being applied.
type Controller struct {
	provider     catalog.Provider
	pricing      fare.PricingConfig
	fetchTimeout time.Duration
	fetchPolicy  FetchPolicy

	mu         sync.Mutex
	flight     *catalog.Flight
	schedule   *catalog.Schedule
	cabinClass string
	passengers fare.PassengerCounts
	addOns     fare.AddOns
	selection  *Selection
	occupancy  *Snapshot
}

// NewController creates a controller bound to a flight-catalog provider
// and a rate card. Occupancy fetches default to fail-open with a bounded
// wait.
func NewController(provider catalog.Provider, pricing fare.PricingConfig) *Controller {
	return &Controller{
		provider:     provider,
		pricing:      pricing,
		fetchTimeout: DefaultFetchTimeout,
		fetchPolicy:  FailOpen,
		passengers:   fare.PassengerCounts{Adults: 1},
		selection:    NewSelection(1),
	}
}

// SetFetchPolicy chooses what a failed occupancy fetch degrades to.
func (c *Controller) SetFetchPolicy(p FetchPolicy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchPolicy = p
}

// SetFetchTimeout bounds the occupancy fetch. Zero disables the bound.
func (c *Controller) SetFetchTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchTimeout = d
}

// Start loads the flight and resolves the initial schedule and cabin
// class. The schedule fallback chain is: the flight's pre-bound schedule,
// else the first upcoming schedule, else a synthetic schedule built from
// the flight's own timestamps so the session is never without one.
func (c *Controller) Start(ctx context.Context, flightID string) error {
	flight, err := c.provider.GetFlightByID(ctx, flightID)
	if err != nil {
		return fmt.Errorf("load flight %s: %w", flightID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.flight = flight
	c.schedule = resolveSchedule(flight)
	c.cabinClass = ""
	if len(flight.Classes) > 0 {
		c.cabinClass = strings.ToLower(flight.Classes[0].ClassName)
	}
	c.selection = NewSelection(c.passengers.Total())
	c.occupancy = nil
	return nil
}

func resolveSchedule(f *catalog.Flight) *catalog.Schedule {
	if f.Schedule != nil {
		s := *f.Schedule
		return &s
	}
	if len(f.UpcomingSchedules) > 0 {
		s := f.UpcomingSchedules[0]
		return &s
	}
	return &catalog.Schedule{
		ID:            f.ID,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
	}
}

// SelectSchedule switches the session to another of the flight's
// schedules. The seat selection and occupancy snapshot are invalidated:
// seats chosen under a different schedule must not carry over.
func (c *Controller) SelectSchedule(scheduleID string) (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.flight == nil {
		return fare.Breakdown{}, ErrNoFlight
	}
	s, ok := findSchedule(c.flight, scheduleID)
	if !ok {
		return c.recompute(), fmt.Errorf("schedule %s: %w", scheduleID, catalog.ErrNotFound)
	}
	c.schedule = &s
	c.selection.Clear()
	c.occupancy = nil
	return c.recompute(), nil
}

func findSchedule(f *catalog.Flight, id string) (catalog.Schedule, bool) {
	if f.Schedule != nil && f.Schedule.ID == id {
		return *f.Schedule, true
	}
	for _, s := range f.UpcomingSchedules {
		if s.ID == id {
			return s, true
		}
	}
	if id == f.ID {
		return *resolveSchedule(&catalog.Flight{ID: f.ID, DepartureTime: f.DepartureTime, ArrivalTime: f.ArrivalTime}), true
	}
	return catalog.Schedule{}, false
}

// SelectCabinClass switches the fare tier. The class must exist in the
// flight's inventory; matching is case-insensitive.
func (c *Controller) SelectCabinClass(className string) (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.flight == nil {
		return fare.Breakdown{}, ErrNoFlight
	}
	for _, fc := range c.flight.Classes {
		if strings.EqualFold(fc.ClassName, className) {
			c.cabinClass = strings.ToLower(fc.ClassName)
			return c.recompute(), nil
		}
	}
	return c.recompute(), fmt.Errorf("cabin class %q: %w", className, catalog.ErrNotFound)
}

// SetPassengers updates the age composition and re-derives the selection
// cap. An already over-cap selection is not truncated; only further
// additions are blocked.
func (c *Controller) SetPassengers(p fare.PassengerCounts) (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.Adults < 1 || p.Children < 0 || p.Infants < 0 {
		return c.recompute(), fmt.Errorf("invalid passenger counts %+v", p)
	}
	c.passengers = p
	c.selection.SetCap(p.Total())
	return c.recompute(), nil
}

// SetAddOns replaces the add-on selection.
func (c *Controller) SetAddOns(a fare.AddOns) (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a.ExtraBaggageCount < 0 {
		return c.recompute(), fmt.Errorf("invalid extra baggage count %d", a.ExtraBaggageCount)
	}
	c.addOns = a
	return c.recompute(), nil
}

// ToggleSeat flips a seat in or out of the selection against the latest
// occupancy snapshot. ErrSeatOccupied and ErrSelectionCapExceeded are
// recoverable; the breakdown returned alongside is always current.
func (c *Controller) ToggleSeat(code string) (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	occupied := false
	if c.occupancy != nil && c.schedule != nil && c.occupancy.ScheduleID == c.schedule.ID {
		occupied = c.occupancy.Occupied(code)
	}
	err := c.selection.Toggle(code, occupied)
	return c.recompute(), err
}

// ClearSeats empties the seat selection.
func (c *Controller) ClearSeats() fare.Breakdown {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection.Clear()
	return c.recompute()
}

// OpenSeatSelector fetches the occupancy snapshot for the current
// schedule. If the schedule changed while the fetch was in flight, the
// late response is dropped silently and the session keeps whatever
// snapshot belongs to the current schedule. On fetch failure the policy
// fallback is applied instead, and the fetch error is returned for
// logging; the session remains usable either way.
func (c *Controller) OpenSeatSelector(ctx context.Context) error {
	c.mu.Lock()
	if c.flight == nil {
		c.mu.Unlock()
		return ErrNoFlight
	}
	if c.schedule == nil {
		c.mu.Unlock()
		return ErrMissingSchedule
	}
	flightID := c.flight.ID
	scheduleID := c.schedule.ID
	timeout := c.fetchTimeout
	policy := c.fetchPolicy
	c.mu.Unlock()

	res := FetchOccupancy(ctx, c.provider, flightID, scheduleID, timeout, policy)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schedule == nil || c.schedule.ID != res.Snapshot.ScheduleID {
		// Stale response for a schedule we are no longer on.
		return nil
	}
	c.occupancy = res.Snapshot
	return res.Err
}

// Schedule returns the currently resolved schedule, or nil.
func (c *Controller) Schedule() *catalog.Schedule {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.schedule == nil {
		return nil
	}
	s := *c.schedule
	return &s
}

// CabinClass returns the lower-cased name of the selected fare tier.
func (c *Controller) CabinClass() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cabinClass
}

// SelectedSeats returns the seat selection in selection order.
func (c *Controller) SelectedSeats() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Seats()
}

// Occupancy returns the snapshot currently applied, or nil if none has
// been fetched for the current schedule.
func (c *Controller) Occupancy() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupancy
}

// Fare recomputes the fare breakdown from current state. It fails only
// when no schedule is resolved, which blocks proceeding to booking.
func (c *Controller) Fare() (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.flight == nil {
		return fare.Breakdown{}, ErrNoFlight
	}
	if c.schedule == nil {
		return fare.Breakdown{}, ErrMissingSchedule
	}
	return c.recompute(), nil
}

// recompute derives the breakdown from current state. Callers hold c.mu.
func (c *Controller) recompute() fare.Breakdown {
	return fare.Calculate(c.pricing, c.basePrice(), c.passengers, c.addOns, c.selection.Seats())
}

// basePrice returns the selected cabin class's base ticket price.
func (c *Controller) basePrice() int64 {
	if c.flight == nil {
		return 0
	}
	for _, fc := range c.flight.Classes {
		if strings.EqualFold(fc.ClassName, c.cabinClass) {
			return fc.Price
		}
	}
	return 0
}
