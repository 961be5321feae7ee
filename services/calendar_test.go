package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/constants"
	"villadash/models"
)

func juneGrid(t *testing.T) Grid {
	t.Helper()
	month, err := ParseMonth("2025-06")
	require.NoError(t, err)

	palm := weekendVilla()
	palm.Order = 2
	hill := models.Villa{ID: 2, Name: "Hill Top", PricePerNight: 4000, Order: 1, Status: constants.VillaStatusActive}

	return BuildGrid(GridInput{
		Month:  month,
		Villas: []models.Villa{palm, hill},
		Bookings: []models.Booking{
			{ID: 10, VillaID: 1, ClientName: "Ravi", Status: constants.BookingStatusBooked,
				CheckIn: models.MustParseDate("2025-06-10"), CheckOut: models.MustParseDate("2025-06-12"), TotalPayment: 10000},
			{ID: 11, VillaID: 1, ClientName: "Asha", Status: constants.BookingStatusBooked,
				CheckIn: models.MustParseDate("2025-06-12"), CheckOut: models.MustParseDate("2025-06-14"),
				TotalPayment: 12000, OverrideTotalPayment: models.AmountPtr(11000)},
			{ID: 12, VillaID: 2, ClientName: "Blocked", Status: constants.BookingStatusBlocked,
				CheckIn: models.MustParseDate("2025-05-30"), CheckOut: models.MustParseDate("2025-06-02")},
			{ID: 13, VillaID: 2, ClientName: "July", Status: constants.BookingStatusBooked,
				CheckIn: models.MustParseDate("2025-07-01"), CheckOut: models.MustParseDate("2025-07-03")},
		},
		Today: models.MustParseDate("2025-06-12"),
	})
}

// cell returns the cell of villa id on day-of-month day.
func cell(t *testing.T, g Grid, day int, villaID uint) Cell {
	t.Helper()
	for _, c := range g.Rows[day-1].Cells {
		if c.VillaID == villaID {
			return c
		}
	}
	t.Fatalf("no cell for villa %d on day %d", villaID, day)
	return Cell{}
}

func TestBuildGridShape(t *testing.T) {
	g := juneGrid(t)

	assert.Equal(t, "2025-06", g.Month)
	assert.Equal(t, "2025-06-30", g.End.String())
	assert.Len(t, g.Rows, 30)
	require.Len(t, g.Villas, 2)
	assert.Equal(t, uint(2), g.Villas[0].ID, "sorted by display order")
	assert.True(t, g.Rows[11].IsToday)
	assert.Equal(t, "Thu", g.Rows[11].Weekday)
}

func TestBuildGridHalfOpenStays(t *testing.T) {
	g := juneGrid(t)

	// 12 June is Ravi's check-out and Asha's check-in.
	c := cell(t, g, 12, 1)
	assert.Equal(t, uint(11), c.BookingID)
	assert.True(t, c.IsStart)
	assert.Equal(t, "Asha", c.ClientName)
	require.NotNil(t, c.Price)
	assert.Equal(t, models.Amount(11000), *c.Price, "start cell shows the effective total")
	assert.Equal(t, constants.CellUpcoming, c.Status)

	c = cell(t, g, 13, 1)
	assert.True(t, c.Continuation)
	assert.Equal(t, 0.6, c.Opacity)
	assert.Empty(t, c.ClientName)

	c = cell(t, g, 14, 1)
	assert.Equal(t, constants.CellAvailable, c.Status, "check-out day is free")
	assert.Equal(t, constants.CellActionCreate, c.Action)
	require.NotNil(t, c.Seed)
	assert.Equal(t, "2025-06-15", c.Seed.CheckOut.String())
	assert.Equal(t, models.Amount(7000), *c.Price, "Saturday is a weekend day")
}

func TestBuildGridStatuses(t *testing.T) {
	g := juneGrid(t)

	c := cell(t, g, 11, 1)
	assert.Equal(t, constants.CellPast, c.Status)
	assert.Equal(t, constants.CellActionDetails, c.Action)

	// Blocked range started in May: June 1 is a continuation, not a start.
	c = cell(t, g, 1, 2)
	assert.Equal(t, constants.CellBlocked, c.Status)
	assert.False(t, c.IsStart)
	assert.True(t, c.Continuation)
	assert.Nil(t, c.Price)

	c = cell(t, g, 2, 2)
	assert.Equal(t, constants.CellAvailable, c.Status)
	assert.Equal(t, models.Amount(4000), *c.Price)

	c = cell(t, g, 30, 2)
	assert.Equal(t, constants.CellAvailable, c.Status, "July booking stays out of June")
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(models.MustParseDate("2024-02-15"))
	assert.Equal(t, "2024-02-01", start.String())
	assert.Equal(t, "2024-03-01", end.String())

	_, err := ParseMonth("2024/02")
	assert.Error(t, err)
}
