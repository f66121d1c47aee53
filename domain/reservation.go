package domain

// Reservation holds a half-open [Start, End) booking of one table.
// Reservations are immutable once booked; there is no edit or cancel.
type Reservation struct {
	TableID  int
	Start    int // inclusive, in time units (e.g. minutes since midnight)
	End      int // exclusive
	Customer string
}

// Overlaps reports whether the reservation intersects the half-open query
// interval [start, end). Touching endpoints do not overlap.
func (r Reservation) Overlaps(start, end int) bool {
	return start < r.End && r.Start < end
}
