package booking

import "errors"

var (
	// ErrSeatOccupied signals a toggle on a seat the latest occupancy
	// snapshot marks as taken. Recovered locally; the selection is
	// unchanged.
	ErrSeatOccupied = errors.New("seat is already occupied")

	// ErrSelectionCapExceeded signals a toggle that would push the
	// selection past the passenger total. Recovered locally; surfaced as
	// a warning, never fatal.
	ErrSelectionCapExceeded = errors.New("seat selection limit reached")

	// ErrMissingSchedule signals a fare request with no schedule
	// resolved. This is the one error that blocks proceeding to booking.
	ErrMissingSchedule = errors.New("no schedule selected")

	// ErrNoFlight signals controller use before Start loaded a flight.
	ErrNoFlight = errors.New("no flight loaded")
)
