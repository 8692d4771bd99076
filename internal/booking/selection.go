package booking

// Selection is the ordered set of chosen seat codes, bounded by the
// passenger total.
type Selection struct {
	seats []string
	cap   int
}

// NewSelection creates an empty selection with the given cap.
func NewSelection(cap int) *Selection {
	return &Selection{cap: cap}
}

// Toggle flips a seat in or out of the selection. Removing is always
// permitted; adding requires the seat to be free and the selection to be
// under cap. Returns ErrSeatOccupied or ErrSelectionCapExceeded on a
// rejected add, leaving the selection unchanged.
func (s *Selection) Toggle(code string, occupied bool) error {
	for i, existing := range s.seats {
		if existing == code {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return nil
		}
	}
	if occupied {
		return ErrSeatOccupied
	}
	if len(s.seats) >= s.cap {
		return ErrSelectionCapExceeded
	}
	s.seats = append(s.seats, code)
	return nil
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.seats = nil
}

// SetCap re-derives the cap after a passenger-count change. A selection
// already over the new cap is left intact; only further additions are
// blocked. Kept as observed behavior.
func (s *Selection) SetCap(cap int) {
	s.cap = cap
}

// Cap returns the current selection cap.
func (s *Selection) Cap() int {
	return s.cap
}

// Len returns the number of selected seats.
func (s *Selection) Len() int {
	return len(s.seats)
}

// Contains reports whether the seat code is selected.
func (s *Selection) Contains(code string) bool {
	for _, existing := range s.seats {
		if existing == code {
			return true
		}
	}
	return false
}

// Seats returns the selected seat codes in selection order.
func (s *Selection) Seats() []string {
	out := make([]string, len(s.seats))
	copy(out, s.seats)
	return out
}
