package model

import (
	"time"
)

const (
	EntityName = "booking"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID             string
	PropertyID     string
	GuestID        string
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	TotalAmount    string
	Status         string
	Notes          string
	CreatedAt      time.Time
}

// OverlapsRange reports whether the booking interval [CheckIn, CheckOut]
// overlaps [start, end], bounds inclusive.
func (b Booking) OverlapsRange(start, end time.Time) bool {
	return !b.CheckIn.After(end) && !b.CheckOut.Before(start)
}
