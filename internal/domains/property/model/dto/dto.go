package dto

import (
	"casa/internal/domains/property/model"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name        string   `json:"name"        validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty"`
	Address     string   `json:"address"     validate:"required"`
	MaxGuests   int      `json:"max_guests"  validate:"omitempty,gte=1"`
	DailyRate   string   `json:"daily_rate"  validate:"required"`
	Amenities   []string `json:"amenities"   validate:"omitempty"`
	Photos      []string `json:"photos"      validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel() model.Property {
	maxGuests := c.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}

	amenities := c.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	photos := c.Photos
	if photos == nil {
		photos = []string{}
	}

	return model.Property{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		MaxGuests:   maxGuests,
		DailyRate:   c.DailyRate,
		Amenities:   amenities,
		Photos:      photos,
		CreatedAt:   timezone.Now(),
	}
}

type UpdatePropertyRequest struct {
	Name        *string   `json:"name"        validate:"omitempty,max=200"`
	Description *string   `json:"description" validate:"omitempty"`
	Address     *string   `json:"address"     validate:"omitempty"`
	MaxGuests   *int      `json:"max_guests"  validate:"omitempty,gte=1"`
	DailyRate   *string   `json:"daily_rate"  validate:"omitempty"`
	Amenities   *[]string `json:"amenities"   validate:"omitempty"`
	Photos      *[]string `json:"photos"      validate:"omitempty"`
}

// ApplyTo merges the supplied fields over the existing record. The id and
// creation timestamp are never part of the merge.
func (u *UpdatePropertyRequest) ApplyTo(property *model.Property) {
	if u.Name != nil {
		property.Name = *u.Name
	}

	if u.Description != nil {
		property.Description = *u.Description
	}

	if u.Address != nil {
		property.Address = *u.Address
	}

	if u.MaxGuests != nil {
		property.MaxGuests = *u.MaxGuests
	}

	if u.DailyRate != nil {
		property.DailyRate = *u.DailyRate
	}

	if u.Amenities != nil {
		property.Amenities = *u.Amenities
	}

	if u.Photos != nil {
		property.Photos = *u.Photos
	}
}

type PropertyResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	MaxGuests   int      `json:"max_guests"`
	DailyRate   string   `json:"daily_rate"`
	Amenities   []string `json:"amenities"`
	Photos      []string `json:"photos"`
	CreatedAt   string   `json:"created_at"`
}

func (r *PropertyResponse) FromModel(mod model.Property) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Address = mod.Address
	r.MaxGuests = mod.MaxGuests
	r.DailyRate = mod.DailyRate
	r.Amenities = mod.Amenities
	r.Photos = mod.Photos
	r.CreatedAt = mod.CreatedAt.Format(constant.DateFormat)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property) {
	r.TotalData = len(models)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

// DeletePhotoRequest identifies a photo by its stored URL.
type DeletePhotoRequest struct {
	URL string `json:"url" validate:"required,url"`
}
