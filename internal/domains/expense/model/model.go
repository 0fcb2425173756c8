package model

import (
	"time"
)

const (
	EntityName = "expense"

	CategoryMaintenance = "maintenance"
	CategoryUtilities   = "utilities"
	CategorySupplies    = "supplies"
	CategoryInsurance   = "insurance"
	CategoryTaxes       = "taxes"
	CategoryOther       = "other"
)

type Expense struct {
	ID          string
	PropertyID  string
	Category    string
	Description string
	Amount      string
	Date        time.Time
	Receipt     string
	CreatedAt   time.Time
}

// InRange reports whether the expense date falls inside [start, end],
// bounds inclusive.
func (e Expense) InRange(start, end time.Time) bool {
	return !e.Date.Before(start) && !e.Date.After(end)
}
