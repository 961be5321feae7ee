package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/models"
)

func searchFixture() []models.Booking {
	return []models.Booking{
		{ID: 1, ClientName: "Ásha Rao", ClientPhone: "9876543210", VillaName: "Palm Villa",
			CheckIn: models.MustParseDate("2025-06-11")},
		{ID: 2, ClientName: "Ravi Kumar", ClientPhone: "9123456780", ClientEmail: "ravi@example.com",
			VillaName: "Hill Top", CheckIn: models.MustParseDate("2025-07-01")},
		{ID: 3, ClientName: "Asha Rao", ClientPhone: "9876500000", VillaName: "Hill Top",
			CheckIn: models.MustParseDate("2025-08-01")},
	}
}

func TestSearchBookingsByName(t *testing.T) {
	hits := SearchBookings(searchFixture(), "asha", 10)

	require.Len(t, hits, 2)
	assert.Equal(t, uint(3), hits[0].ID, "equal scores sort by latest check-in")
	assert.Equal(t, uint(1), hits[1].ID, "accents are ignored")
}

func TestSearchBookingsByPhone(t *testing.T) {
	hits := SearchBookings(searchFixture(), "98765 432", 10)

	require.NotEmpty(t, hits)
	assert.Equal(t, uint(1), hits[0].ID)
	assert.Equal(t, 20, hits[0].Score)
}

func TestSearchBookingsToleratesTypos(t *testing.T) {
	hits := SearchBookings(searchFixture(), "ravi kumr", 10)

	require.NotEmpty(t, hits)
	assert.Equal(t, uint(2), hits[0].ID)
}

func TestSearchBookingsLimitAndEmptyQuery(t *testing.T) {
	assert.Len(t, SearchBookings(searchFixture(), "hill", 1), 1)
	assert.Empty(t, SearchBookings(searchFixture(), "   ", 10))
	assert.Empty(t, SearchBookings(nil, "asha", 10))
}
