package services

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"villadash/models"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"ID", "Villa", "Client", "Phone", "Email", "Check-in", "Check-out", "Nights",
	"Status", "Payment status", "Source", "Total", "Override", "Advance", "Pending", "Notes",
}

// ExportBookings writes the bookings as an xlsx workbook, ordered by check-in.
func ExportBookings(w io.Writer, villas []models.Villa, bookings []models.Booking) error {
	names := make(map[uint]string, len(villas))
	for _, v := range villas {
		names[v.ID] = v.Name
	}
	sorted := append([]models.Booking(nil), bookings...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CheckIn.Before(sorted[j].CheckIn) })

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(exportSheet, 1, 1, style)
	}

	for i, b := range sorted {
		villa := b.VillaName
		if n, ok := names[b.VillaID]; ok {
			villa = n
		}
		var override interface{}
		if b.OverrideTotalPayment != nil {
			override = b.OverrideTotalPayment.Float()
		}
		row := []interface{}{
			b.ID, villa, b.ClientName, b.ClientPhone, b.ClientEmail,
			b.CheckIn.String(), b.CheckOut.String(), b.NightCount(),
			b.Status, b.PaymentStatus, b.BookingSource,
			b.TotalPayment.Float(), override, b.AdvancePayment.Float(),
			PendingPayment(b.EffectiveTotal(), b.AdvancePayment).Float(), b.Notes,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
