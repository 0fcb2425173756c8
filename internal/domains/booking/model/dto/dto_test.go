package dto_test

import (
	"testing"

	"casa/internal/domains/booking/model"
	"casa/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
		Notes:       "arriving late",
	}

	booking, err := req.ToModel("guest-1", model.StatusPending)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, "guest-1", booking.GuestID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, 1, booking.NumberOfGuests, "expected party size to default to 1")
	assert.Equal(t, "arriving late", booking.Notes)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.True(t, booking.CheckOut.After(booking.CheckIn))
}

func TestCreateBookingRequest_ToModel_ExplicitStatusWins(t *testing.T) {
	req := dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
		Status:      model.StatusCancelled,
	}

	booking, err := req.ToModel("guest-1", model.StatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, booking.Status)
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		CheckIn:     "tomorrow",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	}

	_, err := req.ToModel("guest-1", model.StatusPending)

	assert.Error(t, err)
}

func TestUpdateBookingRequest_ApplyTo(t *testing.T) {
	base := dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	}

	booking, err := base.ToModel("guest-1", model.StatusPending)
	assert.NoError(t, err)

	originalID := booking.ID
	originalCreatedAt := booking.CreatedAt

	status := model.StatusConfirmed
	checkOut := "2024-01-17T00:00:00Z"

	patch := dto.UpdateBookingRequest{
		Status:   &status,
		CheckOut: &checkOut,
	}

	assert.NoError(t, patch.ApplyTo(&booking))

	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, 17, booking.CheckOut.Day())
	assert.Equal(t, originalID, booking.ID)
	assert.Equal(t, originalCreatedAt, booking.CreatedAt)
	assert.Equal(t, "1250.00", booking.TotalAmount)
}

func TestBookingDetailResponse_FromModels(t *testing.T) {
	base := dto.CreateBookingRequest{
		PropertyID:  "prop-1",
		CheckIn:     "2024-01-10T00:00:00Z",
		CheckOut:    "2024-01-15T00:00:00Z",
		TotalAmount: "1250.00",
	}

	booking, err := base.ToModel("guest-1", model.StatusPending)
	assert.NoError(t, err)

	var detail dto.BookingDetailResponse
	detail.FromModels(booking, nil, nil)

	assert.Equal(t, booking.ID, detail.ID)
	assert.Nil(t, detail.Guest, "unresolved guest stays nil")
	assert.Nil(t, detail.Property, "unresolved property stays nil")
}
