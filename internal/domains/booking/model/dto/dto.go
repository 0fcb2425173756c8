package dto

import (
	"time"

	"casa/internal/domains/booking/model"
	guestModel "casa/internal/domains/guest/model"
	guestDto "casa/internal/domains/guest/model/dto"
	propertyModel "casa/internal/domains/property/model"
	propertyDto "casa/internal/domains/property/model/dto"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID     string                       `json:"property_id"      validate:"required"`
	GuestID        string                       `json:"guest_id"         validate:"omitempty"`
	Guest          *guestDto.CreateGuestRequest `json:"guest"            validate:"omitempty"`
	CheckIn        string                       `json:"check_in"         validate:"required"`
	CheckOut       string                       `json:"check_out"        validate:"required"`
	NumberOfGuests int                          `json:"number_of_guests" validate:"omitempty,gte=1"`
	TotalAmount    string                       `json:"total_amount"     validate:"required"`
	Status         string                       `json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes          string                       `json:"notes"            validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(guestID, defaultStatus string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := defaultStatus
	if c.Status != "" {
		status = c.Status
	}

	numberOfGuests := c.NumberOfGuests
	if numberOfGuests == 0 {
		numberOfGuests = 1
	}

	return model.Booking{
		ID:             uuid.NewString(),
		PropertyID:     c.PropertyID,
		GuestID:        guestID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: numberOfGuests,
		TotalAmount:    c.TotalAmount,
		Status:         status,
		Notes:          c.Notes,
		CreatedAt:      timezone.Now(),
	}, nil
}

type UpdateBookingRequest struct {
	PropertyID     *string `json:"property_id"      validate:"omitempty"`
	GuestID        *string `json:"guest_id"         validate:"omitempty"`
	CheckIn        *string `json:"check_in"         validate:"omitempty"`
	CheckOut       *string `json:"check_out"        validate:"omitempty"`
	NumberOfGuests *int    `json:"number_of_guests" validate:"omitempty,gte=1"`
	TotalAmount    *string `json:"total_amount"     validate:"omitempty"`
	Status         *string `json:"status"           validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes          *string `json:"notes"            validate:"omitempty"`
}

// ApplyTo merges the supplied fields over the existing record. The id and
// creation timestamp are never part of the merge.
func (u *UpdateBookingRequest) ApplyTo(booking *model.Booking) error {
	if u.PropertyID != nil {
		booking.PropertyID = *u.PropertyID
	}

	if u.GuestID != nil {
		booking.GuestID = *u.GuestID
	}

	if u.CheckIn != nil {
		checkIn, err := timezone.Parse(constant.DateFormat, *u.CheckIn)
		if err != nil {
			return err
		}

		booking.CheckIn = checkIn
	}

	if u.CheckOut != nil {
		checkOut, err := timezone.Parse(constant.DateFormat, *u.CheckOut)
		if err != nil {
			return err
		}

		booking.CheckOut = checkOut
	}

	if u.NumberOfGuests != nil {
		booking.NumberOfGuests = *u.NumberOfGuests
	}

	if u.TotalAmount != nil {
		booking.TotalAmount = *u.TotalAmount
	}

	if u.Status != nil {
		booking.Status = *u.Status
	}

	if u.Notes != nil {
		booking.Notes = *u.Notes
	}

	return nil
}

type BookingResponse struct {
	ID             string `json:"id"`
	PropertyID     string `json:"property_id"`
	GuestID        string `json:"guest_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	NumberOfGuests int    `json:"number_of_guests"`
	TotalAmount    string `json:"total_amount"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
	CreatedAt      string `json:"created_at"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.GuestID = mod.GuestID
	r.CheckIn = mod.CheckIn.Format(constant.DateFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateFormat)
	r.NumberOfGuests = mod.NumberOfGuests
	r.TotalAmount = mod.TotalAmount
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

// BookingDetailResponse is the joined view of a booking with its resolved
// guest and property. Relations left nil could not be resolved.
type BookingDetailResponse struct {
	BookingResponse
	Guest    *guestDto.GuestResponse       `json:"guest,omitempty"`
	Property *propertyDto.PropertyResponse `json:"property,omitempty"`
}

func (r *BookingDetailResponse) FromModels(booking model.Booking, guest *guestModel.Guest, property *propertyModel.Property) {
	r.BookingResponse.FromModel(booking)

	if guest != nil {
		r.Guest = &guestDto.GuestResponse{}
		r.Guest.FromModel(*guest)
	}

	if property != nil {
		r.Property = &propertyDto.PropertyResponse{}
		r.Property.FromModel(*property)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingDetailResponse `json:"bookings"`
	TotalData int                     `json:"total_data"`
}

// DateRangeQuery carries an inclusive [Start, End] interval parsed from
// query parameters.
type DateRangeQuery struct {
	Start time.Time
	End   time.Time
}
