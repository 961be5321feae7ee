package models

import "time"

type Villa struct {
	ID              uint                `json:"id"`
	Name            string              `json:"name"`
	Location        string              `json:"location"`
	Description     string              `json:"description,omitempty"`
	MaxGuests       int                 `json:"maxGuests"`
	PricePerNight   Amount              `json:"pricePerNight"`
	WeekendPrice    *Amount             `json:"weekendPrice,omitempty"`
	SpecialDayPrice *Amount             `json:"specialDayPrice,omitempty"`
	WeekendDays     []int               `json:"weekendDays"`                 // 0=Monday .. 6=Sunday
	SpecialPrices   []SpecialPriceRange `json:"specialPrices"`
	Order           int                 `json:"order"`
	Status          string              `json:"status"`
	Image           string              `json:"image,omitempty"`
	Amenities       []string            `json:"amenities,omitempty"`
}

// SpecialPriceRange overrides the nightly price between Start and End, both inclusive.
type SpecialPriceRange struct {
	Start Date   `json:"start"`
	End   Date   `json:"end"`
	Price Amount `json:"price"`
	Label string `json:"label,omitempty"`
}

func (r SpecialPriceRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// MondayIndex converts Go's Sunday-first weekday to the 0=Monday numbering
// used for weekend days.
func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func (v Villa) IsWeekendDay(d Date) bool {
	idx := MondayIndex(d.Weekday())
	for _, w := range v.WeekendDays {
		if w == idx {
			return true
		}
	}
	return false
}

// SpecialPriceFor returns the first special range covering d.
func (v Villa) SpecialPriceFor(d Date) (SpecialPriceRange, bool) {
	for _, r := range v.SpecialPrices {
		if r.Contains(d) {
			return r, true
		}
	}
	return SpecialPriceRange{}, false
}

// OptsIntoSpecialDays reports whether global special days affect this villa.
func (v Villa) OptsIntoSpecialDays() bool {
	return v.SpecialDayPrice != nil && *v.SpecialDayPrice > 0
}

func (v Villa) HasWeekendPrice() bool {
	return v.WeekendPrice != nil && *v.WeekendPrice > 0
}
