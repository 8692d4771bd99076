package booking

import (
	"context"
	"time"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
)

// Snapshot is a point-in-time view of taken seats for one flight schedule.
// It is tagged with the schedule it was fetched for so a snapshot from a
// different schedule is never applied.
type Snapshot struct {
	ScheduleID string
	taken      map[string]bool
	failClosed bool
}

// EmptySnapshot returns the fail-open snapshot: nothing occupied.
func EmptySnapshot(scheduleID string) *Snapshot {
	return &Snapshot{ScheduleID: scheduleID}
}

// ClosedSnapshot returns the fail-closed snapshot: every seat counts as
// occupied until a real snapshot replaces it.
func ClosedSnapshot(scheduleID string) *Snapshot {
	return &Snapshot{ScheduleID: scheduleID, failClosed: true}
}

// NewSnapshot builds a snapshot from a collaborator seat-status list.
// Seats absent from the list are available.
func NewSnapshot(scheduleID string, seats []catalog.SeatStatus) *Snapshot {
	taken := make(map[string]bool, len(seats))
	for _, s := range seats {
		if s.Occupied() {
			taken[s.SeatNumber] = true
		}
	}
	return &Snapshot{ScheduleID: scheduleID, taken: taken}
}

// Occupied reports whether a seat is taken in this snapshot.
func (s *Snapshot) Occupied(code string) bool {
	if s.failClosed {
		return true
	}
	return s.taken[code]
}

// TakenCount returns how many seats the snapshot marks as taken.
func (s *Snapshot) TakenCount() int {
	return len(s.taken)
}

// FetchPolicy decides what a failed occupancy fetch degrades to.
type FetchPolicy int

const (
	// FailOpen treats every seat as available after a failed fetch. This
	// is the observed production behavior.
	FailOpen FetchPolicy = iota
	// FailClosed treats every seat as occupied after a failed fetch.
	FailClosed
)

// FetchResult carries the outcome of an occupancy fetch. Err is non-nil
// when the fetch failed and Snapshot holds the policy fallback instead of
// real data.
type FetchResult struct {
	Snapshot *Snapshot
	Err      error
}

// FetchOccupancy fetches the occupancy snapshot for a flight schedule with
// a bounded wait. On failure the returned snapshot is the policy fallback
// so the caller never blocks the seat selector on a transient error.
func FetchOccupancy(ctx context.Context, provider catalog.Provider, flightID, scheduleID string, timeout time.Duration, policy FetchPolicy) FetchResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	seats, err := provider.GetSeatMap(ctx, flightID, scheduleID)
	if err != nil {
		fallback := EmptySnapshot(scheduleID)
		if policy == FailClosed {
			fallback = ClosedSnapshot(scheduleID)
		}
		return FetchResult{Snapshot: fallback, Err: err}
	}
	return FetchResult{Snapshot: NewSnapshot(scheduleID, seats)}
}
