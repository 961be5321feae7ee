package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"villadash/constants"
	"villadash/models"
)

func TestBookingBuilderAdvancePayment(t *testing.T) {
	b := NewBookingBuilder().
		WithVilla(3).
		WithClient("Asha", "9876543210", "asha@example.com").
		WithStay(models.MustParseDate("2025-06-11"), models.MustParseDate("2025-06-14")).
		WithPayment(constants.PaymentStatusAdvance, 17000, nil, 5000).
		Build()

	assert.Equal(t, constants.BookingStatusBooked, b.Status)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, models.Amount(5000), b.AdvancePayment)
	assert.Equal(t, models.Amount(12000), b.PendingPayment)
}

func TestBookingBuilderIgnoresAdvanceUnlessAdvanceStatus(t *testing.T) {
	b := NewBookingBuilder().
		WithPayment(constants.PaymentStatusPending, 17000, nil, 5000).
		Build()

	assert.Equal(t, models.Amount(0), b.AdvancePayment)
	assert.Equal(t, models.Amount(17000), b.PendingPayment)
}

func TestBookingBuilderOverrideAndOverpayment(t *testing.T) {
	b := NewBookingBuilder().
		WithPayment(constants.PaymentStatusAdvance, 17000, models.AmountPtr(15000), 16000).
		Build()

	assert.Equal(t, models.Amount(15000), b.EffectiveTotal())
	assert.Equal(t, models.Amount(0), b.PendingPayment, "pending never goes negative")
}

func TestBookingBuilderBlockedDropsGuestAndPayment(t *testing.T) {
	guests := 4
	b := NewBookingBuilder().
		WithStatus(constants.BookingStatusBlocked).
		WithClient("Maintenance", "9876543210", "x@example.com").
		WithGuests(&guests).
		WithSource(constants.BookingSourceCall).
		WithPayment(constants.PaymentStatusAdvance, 17000, nil, 5000).
		Build()

	assert.Equal(t, "Maintenance", b.ClientName)
	assert.Empty(t, b.ClientPhone)
	assert.Nil(t, b.NumberOfGuests)
	assert.Empty(t, b.PaymentStatus)
	assert.Equal(t, models.Amount(0), b.TotalPayment)
	assert.Equal(t, models.Amount(0), b.PendingPayment)
}
