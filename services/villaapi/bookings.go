package villaapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"villadash/dto"
	"villadash/models"
)

func bookingPath(id uint) string {
	return fmt.Sprintf("/bookings/%d/", id)
}

// ListBookings returns bookings matching the filter.
func (c *Client) ListBookings(ctx context.Context, filter dto.BookingFilter) ([]models.Booking, error) {
	query := url.Values{}
	if filter.VillaID != 0 {
		query.Set("villa", strconv.FormatUint(uint64(filter.VillaID), 10))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if !filter.Start.IsZero() {
		query.Set("check_in__gte", filter.Start.String())
	}
	if !filter.End.IsZero() {
		query.Set("check_out__lte", filter.End.String())
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Ordering != "" {
		query.Set("ordering", filter.Ordering)
	}
	records, err := getAll[dto.BookingRecord](ctx, c, "/bookings/", query)
	if err != nil {
		return nil, err
	}
	return dto.BookingsFromRecords(records), nil
}

func (c *Client) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var record dto.BookingRecord
	if err := c.Do(ctx, http.MethodGet, bookingPath(id), nil, nil, &record); err != nil {
		return nil, err
	}
	booking := dto.BookingFromRecord(record)
	return &booking, nil
}

func (c *Client) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var record dto.BookingRecord
	if err := c.Do(ctx, http.MethodPost, "/bookings/", nil, dto.BookingToRecord(booking), &record); err != nil {
		return nil, err
	}
	created := dto.BookingFromRecord(record)
	return &created, nil
}

// UpdateBooking replaces the booking.
func (c *Client) UpdateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var record dto.BookingRecord
	if err := c.Do(ctx, http.MethodPut, bookingPath(booking.ID), nil, dto.BookingToRecord(booking), &record); err != nil {
		return nil, err
	}
	updated := dto.BookingFromRecord(record)
	return &updated, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id uint) error {
	return c.Do(ctx, http.MethodDelete, bookingPath(id), nil, nil, nil)
}

// CalendarBookings returns bookings touching [Start, End], optionally for one villa.
func (c *Client) CalendarBookings(ctx context.Context, q dto.CalendarQuery) ([]models.Booking, error) {
	query := url.Values{}
	query.Set("start", q.Start.String())
	query.Set("end", q.End.String())
	if q.VillaID != 0 {
		query.Set("villa", strconv.FormatUint(uint64(q.VillaID), 10))
	}
	records, err := getAll[dto.BookingRecord](ctx, c, "/bookings/calendar/", query)
	if err != nil {
		return nil, err
	}
	return dto.BookingsFromRecords(records), nil
}

// CalculatePrice asks the API for the total of [checkIn, checkOut) at villaID.
func (c *Client) CalculatePrice(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.PriceQuote, error) {
	query := url.Values{}
	query.Set("villa", strconv.FormatUint(uint64(villaID), 10))
	query.Set("check_in", checkIn.String())
	query.Set("check_out", checkOut.String())
	var quote dto.PriceQuote
	if err := c.Do(ctx, http.MethodGet, "/bookings/calculate-price/", query, nil, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
