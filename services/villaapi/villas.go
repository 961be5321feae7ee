package villaapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"villadash/dto"
	"villadash/models"
)

func villaPath(id uint) string {
	return fmt.Sprintf("/villas/%d/", id)
}

// ListVillas returns all villas, optionally filtered by status.
func (c *Client) ListVillas(ctx context.Context, status string) ([]models.Villa, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	records, err := getAll[dto.VillaRecord](ctx, c, "/villas/", query)
	if err != nil {
		return nil, err
	}
	return dto.VillasFromRecords(records), nil
}

func (c *Client) GetVilla(ctx context.Context, id uint) (*models.Villa, error) {
	var record dto.VillaRecord
	if err := c.Do(ctx, http.MethodGet, villaPath(id), nil, nil, &record); err != nil {
		return nil, err
	}
	villa := dto.VillaFromRecord(record)
	return &villa, nil
}

func (c *Client) CreateVilla(ctx context.Context, villa models.Villa) (*models.Villa, error) {
	var record dto.VillaRecord
	if err := c.Do(ctx, http.MethodPost, "/villas/", nil, dto.VillaToRecord(villa), &record); err != nil {
		return nil, err
	}
	created := dto.VillaFromRecord(record)
	return &created, nil
}

// UpdateVilla replaces the villa.
func (c *Client) UpdateVilla(ctx context.Context, villa models.Villa) (*models.Villa, error) {
	var record dto.VillaRecord
	if err := c.Do(ctx, http.MethodPut, villaPath(villa.ID), nil, dto.VillaToRecord(villa), &record); err != nil {
		return nil, err
	}
	updated := dto.VillaFromRecord(record)
	return &updated, nil
}

// PatchVilla sends only the given snake_case fields.
func (c *Client) PatchVilla(ctx context.Context, id uint, fields map[string]interface{}) (*models.Villa, error) {
	var record dto.VillaRecord
	if err := c.Do(ctx, http.MethodPatch, villaPath(id), nil, fields, &record); err != nil {
		return nil, err
	}
	updated := dto.VillaFromRecord(record)
	return &updated, nil
}

func (c *Client) DeleteVilla(ctx context.Context, id uint) error {
	return c.Do(ctx, http.MethodDelete, villaPath(id), nil, nil, nil)
}

// CheckAvailability asks the API whether [checkIn, checkOut) is free for the villa.
func (c *Client) CheckAvailability(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.AvailabilityResponse, error) {
	query := url.Values{}
	query.Set("check_in", checkIn.String())
	query.Set("check_out", checkOut.String())
	var res dto.AvailabilityResponse
	if err := c.Do(ctx, http.MethodGet, villaPath(villaID)+"availability/", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
