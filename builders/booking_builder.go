package builders

import (
	"villadash/constants"
	"villadash/models"
)

// BookingBuilder assembles the booking payload step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder starts a booked, pending-payment booking
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			Status:        constants.BookingStatusBooked,
			PaymentStatus: constants.PaymentStatusPending,
		},
	}
}

// WithID sets the id of the booking being edited
func (b *BookingBuilder) WithID(id uint) *BookingBuilder {
	b.booking.ID = id
	return b
}

// WithVilla sets the villa
func (b *BookingBuilder) WithVilla(villaID uint) *BookingBuilder {
	b.booking.VillaID = villaID
	return b
}

// WithStatus sets booked or blocked
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	if status != "" {
		b.booking.Status = status
	}
	return b
}

// WithClient sets the guest contact
func (b *BookingBuilder) WithClient(name, phone, email string) *BookingBuilder {
	b.booking.ClientName = name
	b.booking.ClientPhone = phone
	b.booking.ClientEmail = email
	return b
}

// WithStay sets the half-open stay [checkIn, checkOut)
func (b *BookingBuilder) WithStay(checkIn, checkOut models.Date) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	b.booking.Nights = checkIn.DaysUntil(checkOut)
	return b
}

// WithGuests sets the guest count
func (b *BookingBuilder) WithGuests(n *int) *BookingBuilder {
	b.booking.NumberOfGuests = n
	return b
}

// WithNotes sets free-form notes
func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.booking.Notes = notes
	return b
}

// WithSource sets where the booking came from
func (b *BookingBuilder) WithSource(source string) *BookingBuilder {
	b.booking.BookingSource = source
	return b
}

// WithPayment sets the automatic total, the optional override and the
// advance. The advance only counts when the payment status is advance.
func (b *BookingBuilder) WithPayment(status string, total models.Amount, override *models.Amount, advance models.Amount) *BookingBuilder {
	if status != "" {
		b.booking.PaymentStatus = status
	}
	b.booking.TotalPayment = total
	b.booking.OverrideTotalPayment = override
	if b.booking.PaymentStatus == constants.PaymentStatusAdvance {
		b.booking.AdvancePayment = advance
	} else {
		b.booking.AdvancePayment = 0
	}
	return b
}

// Build finishes the booking. Blocked dates carry no guest or payment data.
func (b *BookingBuilder) Build() *models.Booking {
	booking := *b.booking
	if booking.Status == constants.BookingStatusBlocked {
		booking.ClientPhone = ""
		booking.ClientEmail = ""
		booking.NumberOfGuests = nil
		booking.BookingSource = ""
		booking.PaymentStatus = ""
		booking.TotalPayment = 0
		booking.OverrideTotalPayment = nil
		booking.AdvancePayment = 0
	}
	if p := booking.EffectiveTotal() - booking.AdvancePayment; p > 0 {
		booking.PendingPayment = p
	} else {
		booking.PendingPayment = 0
	}
	return &booking
}
