package villaapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"villadash/dto"
	"villadash/models"
)

// DashboardOverview returns the API's headline figures for date (today when zero).
func (c *Client) DashboardOverview(ctx context.Context, date models.Date) (*dto.DashboardOverview, error) {
	query := url.Values{}
	if !date.IsZero() {
		query.Set("date", date.String())
	}
	var res dto.DashboardOverview
	if err := c.Do(ctx, http.MethodGet, "/bookings/dashboard-overview/", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 10
	}
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	records, err := getAll[dto.BookingRecord](ctx, c, "/bookings/recent-bookings/", query)
	if err != nil {
		return nil, err
	}
	return dto.BookingsFromRecords(records), nil
}

func (c *Client) RevenueChart(ctx context.Context, months int) ([]dto.RevenuePoint, error) {
	if months <= 0 {
		months = 6
	}
	query := url.Values{"months": {strconv.Itoa(months)}}
	points := []dto.RevenuePoint{}
	if err := c.Do(ctx, http.MethodGet, "/bookings/revenue-chart/", query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) VillaPerformance(ctx context.Context) ([]dto.VillaPerformance, error) {
	rows := []dto.VillaPerformance{}
	if err := c.Do(ctx, http.MethodGet, "/bookings/villa-performance/", nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) BookingSources(ctx context.Context) ([]dto.BookingSourceShare, error) {
	rows := []dto.BookingSourceShare{}
	if err := c.Do(ctx, http.MethodGet, "/bookings/booking-sources/", nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
