package commands

import (
	"context"

	"villadash/constants"
	"villadash/dto"
	"villadash/models"
)

// Command is one mutation against the villa API.
type Command interface {
	Execute(ctx context.Context) error
	// Touches lists the cached collections the mutation invalidates.
	Touches() []string
}

// BookingAPI is the part of the API client booking commands need.
type BookingAPI interface {
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	UpdateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id uint) error
}

// CreateBookingCommand creates a booking
type CreateBookingCommand struct {
	booking models.Booking
	api     BookingAPI
	Result  *models.Booking
}

func NewCreateBookingCommand(booking models.Booking, api BookingAPI) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		api:     api,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	created, err := c.api.CreateBooking(ctx, c.booking)
	if err != nil {
		return err
	}
	c.Result = created
	return nil
}

func (c *CreateBookingCommand) Touches() []string {
	return []string{constants.CacheBookings}
}

// UpdateBookingCommand replaces a booking
type UpdateBookingCommand struct {
	booking models.Booking
	api     BookingAPI
	Result  *models.Booking
}

func NewUpdateBookingCommand(booking models.Booking, api BookingAPI) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		api:     api,
	}
}

func (c *UpdateBookingCommand) Execute(ctx context.Context) error {
	updated, err := c.api.UpdateBooking(ctx, c.booking)
	if err != nil {
		return err
	}
	c.Result = updated
	return nil
}

func (c *UpdateBookingCommand) Touches() []string {
	return []string{constants.CacheBookings}
}

// DeleteBookingCommand deletes a booking
type DeleteBookingCommand struct {
	bookingID uint
	api       BookingAPI
}

func NewDeleteBookingCommand(bookingID uint, api BookingAPI) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		api:       api,
	}
}

func (c *DeleteBookingCommand) Execute(ctx context.Context) error {
	return c.api.DeleteBooking(ctx, c.bookingID)
}

func (c *DeleteBookingCommand) Touches() []string {
	return []string{constants.CacheBookings}
}

// SpecialDayAPI is the part of the API client special-day commands need.
type SpecialDayAPI interface {
	CreateSpecialDay(ctx context.Context, req dto.SpecialDayRequest) (*models.GlobalSpecialDay, error)
	DeleteSpecialDay(ctx context.Context, id uint) error
}

type CreateSpecialDayCommand struct {
	req    dto.SpecialDayRequest
	api    SpecialDayAPI
	Result *models.GlobalSpecialDay
}

func NewCreateSpecialDayCommand(req dto.SpecialDayRequest, api SpecialDayAPI) *CreateSpecialDayCommand {
	return &CreateSpecialDayCommand{req: req, api: api}
}

func (c *CreateSpecialDayCommand) Execute(ctx context.Context) error {
	day, err := c.api.CreateSpecialDay(ctx, c.req)
	if err != nil {
		return err
	}
	c.Result = day
	return nil
}

func (c *CreateSpecialDayCommand) Touches() []string {
	return []string{constants.CacheSpecialDays}
}

type DeleteSpecialDayCommand struct {
	id  uint
	api SpecialDayAPI
}

func NewDeleteSpecialDayCommand(id uint, api SpecialDayAPI) *DeleteSpecialDayCommand {
	return &DeleteSpecialDayCommand{id: id, api: api}
}

func (c *DeleteSpecialDayCommand) Execute(ctx context.Context) error {
	return c.api.DeleteSpecialDay(ctx, c.id)
}

func (c *DeleteSpecialDayCommand) Touches() []string {
	return []string{constants.CacheSpecialDays}
}
