package catalog

import "time"

// Flight is a snapshot of a flight as served by the flight catalog.
// Prices are integer VND.
type Flight struct {
	ID                string        `json:"id"`
	AirlineName       string        `json:"airlineName"`
	FlightNumber      string        `json:"flightNumber"`
	Origin            string        `json:"origin"`
	Destination       string        `json:"destination"`
	DepartureTime     time.Time     `json:"departureTime"`
	ArrivalTime       time.Time     `json:"arrivalTime"`
	Classes           []FlightClass `json:"classes"`
	Schedule          *Schedule     `json:"schedule,omitempty"`
	UpcomingSchedules []Schedule    `json:"upcomingSchedules,omitempty"`
}

// FlightClass is one cabin tier on a flight.
type FlightClass struct {
	ClassName      string `json:"className"`
	Price          int64  `json:"price"`
	AvailableSeats int    `json:"availableSeats"`
}

// Schedule is one departure of a flight. A flight may expose zero, one or
// many schedules; callers must resolve exactly one before pricing.
type Schedule struct {
	ID             string    `json:"id"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	RemainingSeats int       `json:"remainingSeats"`
	CurrentPrice   int64     `json:"currentPrice"`
}

// SeatTaken is the status value a booked seat carries in an occupancy
// snapshot. Any other value, and any seat absent from the snapshot, counts
// as available.
const SeatTaken = "booked"

// StatusAvailable is the status value reported for an open seat.
const StatusAvailable = "available"

// SeatStatus is one entry of an occupancy snapshot.
type SeatStatus struct {
	SeatNumber string `json:"seatNumber"`
	Status     string `json:"status"`
}

// Occupied reports whether this entry marks the seat as taken.
func (s SeatStatus) Occupied() bool {
	return s.Status != StatusAvailable && s.Status != ""
}
