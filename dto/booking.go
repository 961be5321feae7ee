package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"villadash/models"
)

// VillaRef is the booking's villa field: a bare id on writes, and either an
// id or a nested villa object on reads.
type VillaRef struct {
	ID   uint
	Name string
}

func (r VillaRef) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(r.ID), 10)), nil
}

func (r *VillaRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = VillaRef{}
		return nil
	case len(data) > 0 && data[0] == '{':
		var obj struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = VillaRef{ID: obj.ID, Name: obj.Name}
		return nil
	case len(data) > 0 && data[0] == '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid villa id %q: %w", s, err)
		}
		*r = VillaRef{ID: uint(id)}
		return nil
	default:
		id, err := strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid villa id %s: %w", data, err)
		}
		*r = VillaRef{ID: uint(id)}
		return nil
	}
}

// BookingRecord is the booking as the API sends and accepts it. The calendar
// endpoint flattens the villa into villa_id and villa_name.
type BookingRecord struct {
	ID                   uint           `json:"id,omitempty"`
	Villa                VillaRef       `json:"villa"`
	VillaID              uint           `json:"villa_id,omitempty"`
	VillaName            string         `json:"villa_name,omitempty"`
	VillaDetails         *VillaRecord   `json:"villa_details,omitempty"`
	ClientName           string         `json:"client_name"`
	ClientPhone          string         `json:"client_phone,omitempty"`
	ClientEmail          string         `json:"client_email,omitempty"`
	CheckIn              models.Date    `json:"check_in"`
	CheckOut             models.Date    `json:"check_out"`
	Status               string         `json:"status"`
	NumberOfGuests       *int           `json:"number_of_guests,omitempty"`
	Notes                string         `json:"notes,omitempty"`
	PaymentStatus        string         `json:"payment_status,omitempty"`
	BookingSource        string         `json:"booking_source,omitempty"`
	TotalPayment         models.Amount  `json:"total_payment"`
	TotalAmount          *models.Amount `json:"total_amount,omitempty"`
	AdvancePayment       models.Amount  `json:"advance_payment"`
	PendingPayment       *models.Amount `json:"pending_payment,omitempty"`
	OverrideTotalPayment *models.Amount `json:"override_total_payment,omitempty"`
	Nights               int            `json:"nights,omitempty"`
	CreatedAt            *time.Time     `json:"created_at,omitempty"`
	UpdatedAt            *time.Time     `json:"updated_at,omitempty"`
}

// BookingFilter narrows GET /bookings/.
type BookingFilter struct {
	VillaID  uint
	Status   string
	Start    models.Date
	End      models.Date
	Search   string
	Ordering string
}

// CalendarQuery selects GET /bookings/calendar/.
type CalendarQuery struct {
	Start   models.Date
	End     models.Date
	VillaID uint
}

// BookingFormRequest is the booking form as posted by the dashboard.
type BookingFormRequest struct {
	VillaID              uint     `json:"villaId" validate:"required"`
	ClientName           string   `json:"clientName"`
	ClientPhone          string   `json:"clientPhone"`
	ClientEmail          string   `json:"clientEmail" validate:"omitempty,email"`
	CheckIn              string   `json:"checkIn"`
	CheckOut             string   `json:"checkOut"`
	Status               string   `json:"status" validate:"omitempty,oneof=booked blocked"`
	NumberOfGuests       *int     `json:"numberOfGuests" validate:"omitempty,gte=1"`
	Notes                string   `json:"notes"`
	PaymentStatus        string   `json:"paymentStatus" validate:"omitempty,oneof=pending advance full"`
	BookingSource        string   `json:"bookingSource" validate:"omitempty,oneof=call whatsapp website other"`
	TotalPayment         *float64 `json:"totalPayment" validate:"omitempty,gte=0"`
	AdvancePayment       float64  `json:"advancePayment" validate:"gte=0"`
	OverrideTotalPayment *float64 `json:"overrideTotalPayment" validate:"omitempty,gte=0"`
}

// PreviewRequest asks for the server quote plus the pending-payment figure.
type PreviewRequest struct {
	VillaID              uint     `json:"villaId" validate:"required"`
	CheckIn              string   `json:"checkIn" validate:"required"`
	CheckOut             string   `json:"checkOut" validate:"required"`
	OverrideTotalPayment *float64 `json:"overrideTotalPayment" validate:"omitempty,gte=0"`
	AdvancePayment       float64  `json:"advancePayment" validate:"gte=0"`
}

// PriceBreakdown counts nights per price category.
type PriceBreakdown struct {
	BaseNights    int `json:"base_nights"`
	WeekendNights int `json:"weekend_nights"`
	SpecialNights int `json:"special_nights"`
}

// PriceQuote is the API's price calculation reply.
type PriceQuote struct {
	TotalPayment        models.Amount  `json:"total_payment"`
	Nights              int            `json:"nights"`
	AutoCalculatedPrice PriceBreakdown `json:"auto_calculated_price"`
}

// PricePreview is the dashboard's view of a quote.
type PricePreview struct {
	VillaID        uint           `json:"villaId"`
	CheckIn        models.Date    `json:"checkIn"`
	CheckOut       models.Date    `json:"checkOut"`
	Nights         int            `json:"nights"`
	AutoTotal      models.Amount  `json:"autoTotal"`
	Override       *models.Amount `json:"override,omitempty"`
	EffectiveTotal models.Amount  `json:"effectiveTotal"`
	AdvancePayment models.Amount  `json:"advancePayment"`
	PendingPayment models.Amount  `json:"pendingPayment"`
	Breakdown      PriceBreakdown `json:"breakdown"`
}
