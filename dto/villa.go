package dto

import (
	"villadash/constants"
	"villadash/models"
)

// VillaRecord is the villa as the API sends and accepts it.
type VillaRecord struct {
	ID              uint                 `json:"id,omitempty"`
	Name            string               `json:"name"`
	Location        string               `json:"location"`
	Description     string               `json:"description,omitempty"`
	MaxGuests       int                  `json:"max_guests"`
	PricePerNight   models.Amount        `json:"price_per_night"`
	WeekendPrice    *models.Amount       `json:"weekend_price"`
	SpecialDayPrice *models.Amount       `json:"special_day_price"`
	WeekendDays     []int                `json:"weekend_days"`
	SpecialPrices   []SpecialPriceRecord `json:"special_prices"`
	Order           int                  `json:"order"`
	Status          string               `json:"status"`
	Image           string               `json:"image,omitempty"`
	Amenities       []string             `json:"amenities,omitempty"`
}

type SpecialPriceRecord struct {
	StartDate models.Date   `json:"start_date"`
	EndDate   models.Date   `json:"end_date"`
	Price     models.Amount `json:"price"`
	Label     string        `json:"label,omitempty"`
}

// VillaRequest is what the dashboard posts to create or replace a villa.
type VillaRequest struct {
	Name            string                     `json:"name" validate:"required"`
	Location        string                     `json:"location" validate:"required"`
	Description     string                     `json:"description"`
	MaxGuests       int                        `json:"maxGuests" validate:"gte=1"`
	PricePerNight   float64                    `json:"pricePerNight" validate:"gt=0"`
	WeekendPrice    *float64                   `json:"weekendPrice" validate:"omitempty,gt=0"`
	SpecialDayPrice *float64                   `json:"specialDayPrice" validate:"omitempty,gt=0"`
	WeekendDays     []int                      `json:"weekendDays" validate:"dive,gte=0,lte=6"`
	SpecialPrices   []models.SpecialPriceRange `json:"specialPrices"`
	Order           int                        `json:"order" validate:"gte=0"`
	Status          string                     `json:"status" validate:"omitempty,oneof=active maintenance"`
	Image           string                     `json:"image"`
	Amenities       []string                   `json:"amenities"`
}

// ToModel converts the request into a villa with the given id.
func (r VillaRequest) ToModel(id uint) models.Villa {
	v := models.Villa{
		ID:            id,
		Name:          r.Name,
		Location:      r.Location,
		Description:   r.Description,
		MaxGuests:     r.MaxGuests,
		PricePerNight: models.Amount(r.PricePerNight),
		WeekendDays:   r.WeekendDays,
		SpecialPrices: r.SpecialPrices,
		Order:         r.Order,
		Status:        r.Status,
		Image:         r.Image,
		Amenities:     r.Amenities,
	}
	if r.WeekendPrice != nil {
		v.WeekendPrice = models.AmountPtr(*r.WeekendPrice)
	}
	if r.SpecialDayPrice != nil {
		v.SpecialDayPrice = models.AmountPtr(*r.SpecialDayPrice)
	}
	if v.Status == "" {
		v.Status = constants.VillaStatusActive
	}
	return v
}

// AvailabilityResponse is the reply of /villas/{id}/availability/.
type AvailabilityResponse struct {
	Available           bool             `json:"available"`
	ConflictingBookings []ConflictRecord `json:"conflicting_bookings"`
}

type ConflictRecord struct {
	ID         uint        `json:"id"`
	ClientName string      `json:"client_name"`
	CheckIn    models.Date `json:"check_in"`
	CheckOut   models.Date `json:"check_out"`
}

// EstimateRequest asks for a local price estimate from a villa draft.
type EstimateRequest struct {
	Villa    VillaRequest `json:"villa"`
	CheckIn  string       `json:"checkIn" validate:"required"`
	CheckOut string       `json:"checkOut" validate:"required"`
}
