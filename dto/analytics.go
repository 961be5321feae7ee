package dto

import "villadash/models"

// DashboardOverview is the reply of /bookings/dashboard-overview/.
type DashboardOverview struct {
	Date    string `json:"date,omitempty"`
	Revenue struct {
		Total     models.Amount `json:"total"`
		ThisMonth models.Amount `json:"this_month"`
	} `json:"revenue"`
	Bookings struct {
		Total        int `json:"total"`
		TotalClients int `json:"total_clients"`
		ThisMonth    int `json:"this_month"`
		Upcoming     int `json:"upcoming_7_days"`
	} `json:"bookings"`
	Villas struct {
		Total         int     `json:"total"`
		Active        int     `json:"active"`
		Maintenance   int     `json:"maintenance"`
		OccupancyRate float64 `json:"occupancy_rate"`
	} `json:"villas"`
	Today TodayStats `json:"today"`
}

type TodayStats struct {
	CheckIns        int `json:"check_ins"`
	CheckOuts       int `json:"check_outs"`
	CurrentlyBooked int `json:"currently_booked"`
}

type RevenuePoint struct {
	Month    string        `json:"month"`
	Revenue  models.Amount `json:"revenue"`
	Bookings int           `json:"bookings"`
}

type VillaPerformance struct {
	VillaID           uint          `json:"villa_id"`
	VillaName         string        `json:"villa_name"`
	TotalBookings     int           `json:"total_bookings"`
	TotalRevenue      models.Amount `json:"total_revenue"`
	TotalNightsBooked int           `json:"total_nights_booked"`
	Status            string        `json:"status"`
}

type BookingSourceShare struct {
	Source        string  `json:"source"`
	SourceDisplay string  `json:"source_display"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
}

// LocalOverview is derived from the cached booking list.
type LocalOverview struct {
	Date            models.Date      `json:"date"`
	TotalVillas     int              `json:"totalVillas"`
	ActiveVillas    int              `json:"activeVillas"`
	CheckIns        []models.Booking `json:"checkIns"`
	CheckOuts       []models.Booking `json:"checkOuts"`
	CurrentlyBooked int              `json:"currentlyBooked"`
	Upcoming7Days   int              `json:"upcoming7Days"`
}
