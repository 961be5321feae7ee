package services

import (
	"fmt"
	"sort"
	"time"

	"villadash/constants"
	"villadash/models"
)

const continuationOpacity = 0.6

// GridInput is everything needed to draw one month.
type GridInput struct {
	Month       models.Date
	Villas      []models.Villa
	Bookings    []models.Booking
	SpecialDays []models.GlobalSpecialDay
	Today       models.Date
}

// CellSeed pre-fills the create flow opened from an empty cell.
type CellSeed struct {
	VillaID  uint        `json:"villaId"`
	CheckIn  models.Date `json:"checkIn"`
	CheckOut models.Date `json:"checkOut"`
}

type Cell struct {
	VillaID       uint           `json:"villaId"`
	Date          models.Date    `json:"date"`
	Status        string         `json:"status"`
	BookingID     uint           `json:"bookingId,omitempty"`
	IsStart       bool           `json:"isStart"`
	Continuation  bool           `json:"continuation"`
	Opacity       float64        `json:"opacity"`
	ClientName    string         `json:"clientName,omitempty"`
	Price         *models.Amount `json:"price,omitempty"`
	PriceCategory string         `json:"priceCategory,omitempty"`
	Action        string         `json:"action"`
	Seed          *CellSeed      `json:"seed,omitempty"`
}

type GridRow struct {
	Date    models.Date `json:"date"`
	Weekday string      `json:"weekday"`
	IsToday bool        `json:"isToday"`
	Cells   []Cell      `json:"cells"`
}

type GridVilla struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Grid is a day x villa matrix for one month.
type Grid struct {
	Month  string      `json:"month"`
	Start  models.Date `json:"start"`
	End    models.Date `json:"end"`
	Villas []GridVilla `json:"villas"`
	Rows   []GridRow   `json:"rows"`
}

// ParseMonth accepts YYYY-MM.
func ParseMonth(s string) (models.Date, error) {
	t, err := time.Parse(constants.MonthLayout, s)
	if err != nil {
		return models.Date{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return models.DateOf(t), nil
}

// MonthRange returns the first day of the month and the day after its last,
// the half-open range the calendar endpoint is queried with.
func MonthRange(month models.Date) (models.Date, models.Date) {
	start := month.MonthStart()
	return start, month.MonthEnd().AddDays(1)
}

// SortVillas orders villas by display order, then id.
func SortVillas(villas []models.Villa) []models.Villa {
	sorted := append([]models.Villa(nil), villas...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// BuildGrid derives the calendar of in.Month.
func BuildGrid(in GridInput) Grid {
	start, end := MonthRange(in.Month)
	villas := SortVillas(in.Villas)

	byVilla := make(map[uint][]models.Booking)
	for _, b := range in.Bookings {
		if b.Overlaps(start, end) {
			byVilla[b.VillaID] = append(byVilla[b.VillaID], b)
		}
	}
	for id := range byVilla {
		list := byVilla[id]
		sort.SliceStable(list, func(i, j int) bool { return list[i].CheckIn.Before(list[j].CheckIn) })
	}

	grid := Grid{
		Month:  start.Format(constants.MonthLayout),
		Start:  start,
		End:    end.AddDays(-1),
		Villas: make([]GridVilla, 0, len(villas)),
		Rows:   make([]GridRow, 0, start.DaysUntil(end)),
	}
	for _, v := range villas {
		grid.Villas = append(grid.Villas, GridVilla{ID: v.ID, Name: v.Name, Status: v.Status})
	}

	for d := start; d.Before(end); d = d.AddDays(1) {
		row := GridRow{
			Date:    d,
			Weekday: d.Weekday().String()[:3],
			IsToday: d.Equal(in.Today),
			Cells:   make([]Cell, 0, len(villas)),
		}
		for _, v := range villas {
			row.Cells = append(row.Cells, buildCell(v, d, byVilla[v.ID], in.SpecialDays, in.Today))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func buildCell(villa models.Villa, d models.Date, bookings []models.Booking, specialDays []models.GlobalSpecialDay, today models.Date) Cell {
	cell := Cell{VillaID: villa.ID, Date: d, Opacity: 1}

	booking, ok := occupying(bookings, d)
	if !ok {
		np := NightlyPrice(villa, d, specialDays)
		cell.Status = constants.CellAvailable
		cell.Price = &np.Amount
		cell.PriceCategory = np.Category
		cell.Action = constants.CellActionCreate
		cell.Seed = &CellSeed{VillaID: villa.ID, CheckIn: d, CheckOut: d.AddDays(1)}
		return cell
	}

	cell.Status = CellStatus(booking, d, today)
	cell.BookingID = booking.ID
	cell.Action = constants.CellActionDetails
	if d.Equal(booking.CheckIn) {
		cell.IsStart = true
		cell.ClientName = booking.ClientName
		if !booking.IsBlocked() {
			total := booking.EffectiveTotal()
			cell.Price = &total
		}
	} else {
		cell.Continuation = true
		cell.Opacity = continuationOpacity
	}
	return cell
}

// occupying returns the booking holding day d, using the half-open test.
func occupying(bookings []models.Booking, d models.Date) (models.Booking, bool) {
	for _, b := range bookings {
		if b.Occupies(d) {
			return b, true
		}
	}
	return models.Booking{}, false
}

// CellStatus maps an occupied day to its colour class.
func CellStatus(b models.Booking, d, today models.Date) string {
	switch {
	case b.IsBlocked():
		return constants.CellBlocked
	case d.Before(today):
		return constants.CellPast
	default:
		return constants.CellUpcoming
	}
}
