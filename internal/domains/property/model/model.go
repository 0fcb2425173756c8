package model

import (
	"time"
)

const (
	EntityName = "property"
)

type Property struct {
	ID          string
	Name        string
	Description string
	Address     string
	MaxGuests   int
	DailyRate   string
	Amenities   []string
	Photos      []string
	CreatedAt   time.Time
}
