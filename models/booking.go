package models

import (
	"time"

	"villadash/constants"
)

type Booking struct {
	ID                   uint       `json:"id"`
	VillaID              uint       `json:"villaId"`
	VillaName            string     `json:"villaName,omitempty"`
	ClientName           string     `json:"clientName"`
	ClientPhone          string     `json:"clientPhone,omitempty"`
	ClientEmail          string     `json:"clientEmail,omitempty"`
	CheckIn              Date       `json:"checkIn"`
	CheckOut             Date       `json:"checkOut"` // exclusive
	Status               string     `json:"status"`
	NumberOfGuests       *int       `json:"numberOfGuests,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	PaymentStatus        string     `json:"paymentStatus,omitempty"`
	BookingSource        string     `json:"bookingSource,omitempty"`
	TotalPayment         Amount     `json:"totalPayment"`
	AdvancePayment       Amount     `json:"advancePayment"`
	PendingPayment       Amount     `json:"pendingPayment"`
	OverrideTotalPayment *Amount    `json:"overrideTotalPayment,omitempty"`
	Nights               int        `json:"nights"`
	CreatedAt            *time.Time `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// Occupies reports whether the booking holds day d: CheckIn <= d < CheckOut.
func (b Booking) Occupies(d Date) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}

// Overlaps applies the same half-open test to a whole range.
func (b Booking) Overlaps(checkIn, checkOut Date) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}

func (b Booking) NightCount() int {
	if b.Nights > 0 {
		return b.Nights
	}
	if n := b.CheckIn.DaysUntil(b.CheckOut); n > 0 {
		return n
	}
	return 0
}

// EffectiveTotal is the override when one is set, the auto figure otherwise.
func (b Booking) EffectiveTotal() Amount {
	if b.OverrideTotalPayment != nil {
		return *b.OverrideTotalPayment
	}
	return b.TotalPayment
}

func (b Booking) IsBlocked() bool {
	return b.Status == constants.BookingStatusBlocked
}
