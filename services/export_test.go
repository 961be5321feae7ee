package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"villadash/models"
)

func TestExportBookings(t *testing.T) {
	villas := []models.Villa{{ID: 1, Name: "Palm Villa"}}
	bookings := []models.Booking{
		{ID: 2, VillaID: 1, ClientName: "Later", Status: "booked",
			CheckIn: models.MustParseDate("2025-07-01"), CheckOut: models.MustParseDate("2025-07-03"), TotalPayment: 10000},
		{ID: 1, VillaID: 1, ClientName: "Asha", Status: "booked", PaymentStatus: "advance",
			CheckIn: models.MustParseDate("2025-06-11"), CheckOut: models.MustParseDate("2025-06-14"),
			TotalPayment: 17000, AdvancePayment: 5000},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportBookings(&buf, villas, bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders[:3], rows[0][:3])
	assert.Equal(t, []string{"1", "Palm Villa", "Asha"}, rows[1][:3])
	assert.Equal(t, "2025-06-11", rows[1][5])
	assert.Equal(t, "12000", rows[1][14], "pending column")
	assert.Equal(t, "Later", rows[2][2])
}
