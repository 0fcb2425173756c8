package dto

import (
	"time"

	"casa/internal/domains/expense/model"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/google/uuid"
)

type CreateExpenseRequest struct {
	PropertyID  string `json:"property_id" validate:"required"`
	Category    string `json:"category"    validate:"required,oneof=maintenance utilities supplies insurance taxes other"`
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount"      validate:"required"`
	Date        string `json:"date"        validate:"required"`
	Receipt     string `json:"receipt"     validate:"omitempty"`
}

func (c *CreateExpenseRequest) ToModel() (model.Expense, error) {
	date, err := timezone.Parse(constant.DateFormat, c.Date)
	if err != nil {
		return model.Expense{}, err
	}

	return model.Expense{
		ID:          uuid.NewString(),
		PropertyID:  c.PropertyID,
		Category:    c.Category,
		Description: c.Description,
		Amount:      c.Amount,
		Date:        date,
		Receipt:     c.Receipt,
		CreatedAt:   timezone.Now(),
	}, nil
}

type ExpenseResponse struct {
	ID          string `json:"id"`
	PropertyID  string `json:"property_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Receipt     string `json:"receipt"`
	CreatedAt   string `json:"created_at"`
}

func (r *ExpenseResponse) FromModel(mod model.Expense) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Category = mod.Category
	r.Description = mod.Description
	r.Amount = mod.Amount
	r.Date = mod.Date.Format(constant.DateFormat)
	r.Receipt = mod.Receipt
	r.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

type GetExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	TotalData int               `json:"total_data"`
}

func (r *GetExpensesResponse) FromModels(models []model.Expense) {
	r.TotalData = len(models)

	r.Expenses = make([]ExpenseResponse, len(models))
	for i, mod := range models {
		r.Expenses[i].FromModel(mod)
	}
}

// DateRangeQuery carries an inclusive [Start, End] interval parsed from
// query parameters.
type DateRangeQuery struct {
	Start time.Time
	End   time.Time
}
