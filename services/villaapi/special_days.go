package villaapi

import (
	"context"
	"fmt"
	"net/http"

	"villadash/dto"
	"villadash/models"
)

func (c *Client) ListSpecialDays(ctx context.Context) ([]models.GlobalSpecialDay, error) {
	return getAll[models.GlobalSpecialDay](ctx, c, "/special-days/", nil)
}

// CreateSpecialDay posts {name, day, month, year}; year is null for recurring days.
func (c *Client) CreateSpecialDay(ctx context.Context, req dto.SpecialDayRequest) (*models.GlobalSpecialDay, error) {
	body := struct {
		Name  string `json:"name"`
		Day   int    `json:"day"`
		Month int    `json:"month"`
		Year  *int   `json:"year"`
	}{req.Name, req.Day, req.Month, req.Year}

	var day models.GlobalSpecialDay
	if err := c.Do(ctx, http.MethodPost, "/special-days/", nil, body, &day); err != nil {
		return nil, err
	}
	return &day, nil
}

func (c *Client) DeleteSpecialDay(ctx context.Context, id uint) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/special-days/%d/", id), nil, nil, nil)
}
