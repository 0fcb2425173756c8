package dto

import (
	"casa/internal/domains/guest/model"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	LastName   string `json:"last_name"  validate:"required,max=100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Phone      string `json:"phone"      validate:"required,max=20"`
	Document   string `json:"document"   validate:"omitempty,max=20"`
	Street     string `json:"street"     validate:"omitempty"`
	Number     string `json:"number"     validate:"omitempty"`
	Complement string `json:"complement" validate:"omitempty"`
	City       string `json:"city"       validate:"omitempty"`
	State      string `json:"state"      validate:"omitempty"`
	ZipCode    string `json:"zip_code"   validate:"omitempty"`
	Notes      string `json:"notes"      validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		ID:         uuid.NewString(),
		Name:       c.Name,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Document:   c.Document,
		Street:     c.Street,
		Number:     c.Number,
		Complement: c.Complement,
		City:       c.City,
		State:      c.State,
		ZipCode:    c.ZipCode,
		Notes:      c.Notes,
		CreatedAt:  timezone.Now(),
	}
}

type UpdateGuestRequest struct {
	Name       *string `json:"name"       validate:"omitempty,max=100"`
	LastName   *string `json:"last_name"  validate:"omitempty,max=100"`
	Email      *string `json:"email"      validate:"omitempty,email,max=100"`
	Phone      *string `json:"phone"      validate:"omitempty,max=20"`
	Document   *string `json:"document"   validate:"omitempty,max=20"`
	Street     *string `json:"street"     validate:"omitempty"`
	Number     *string `json:"number"     validate:"omitempty"`
	Complement *string `json:"complement" validate:"omitempty"`
	City       *string `json:"city"       validate:"omitempty"`
	State      *string `json:"state"      validate:"omitempty"`
	ZipCode    *string `json:"zip_code"   validate:"omitempty"`
	Notes      *string `json:"notes"      validate:"omitempty"`
}

// ApplyTo merges the supplied fields over the existing record. The id and
// creation timestamp are never part of the merge.
func (u *UpdateGuestRequest) ApplyTo(guest *model.Guest) {
	if u.Name != nil {
		guest.Name = *u.Name
	}

	if u.LastName != nil {
		guest.LastName = *u.LastName
	}

	if u.Email != nil {
		guest.Email = *u.Email
	}

	if u.Phone != nil {
		guest.Phone = *u.Phone
	}

	if u.Document != nil {
		guest.Document = *u.Document
	}

	if u.Street != nil {
		guest.Street = *u.Street
	}

	if u.Number != nil {
		guest.Number = *u.Number
	}

	if u.Complement != nil {
		guest.Complement = *u.Complement
	}

	if u.City != nil {
		guest.City = *u.City
	}

	if u.State != nil {
		guest.State = *u.State
	}

	if u.ZipCode != nil {
		guest.ZipCode = *u.ZipCode
	}

	if u.Notes != nil {
		guest.Notes = *u.Notes
	}
}

type GuestResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Document   string `json:"document"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at"`
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.LastName = mod.LastName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Document = mod.Document
	r.Street = mod.Street
	r.Number = mod.Number
	r.Complement = mod.Complement
	r.City = mod.City
	r.State = mod.State
	r.ZipCode = mod.ZipCode
	r.Notes = mod.Notes
	r.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest) {
	r.TotalData = len(models)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
