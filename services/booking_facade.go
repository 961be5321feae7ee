package services

import (
	"context"
	"fmt"

	"villadash/builders"
	"villadash/commands"
	"villadash/constants"
	"villadash/dto"
	"villadash/errors"
	"villadash/models"
	"villadash/services/logger"
	"villadash/services/notification"
	"villadash/validator"
)

// BookingGateway is the part of the API client the booking form needs.
type BookingGateway interface {
	commands.BookingAPI
	CheckAvailability(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.AvailabilityResponse, error)
	CalculatePrice(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.PriceQuote, error)
}

type BookingFacadeOptions struct {
	API       BookingGateway
	Store     *DataStore
	Notifier  notification.Service
	SessionID string
	Logger    logger.Logger
}

// BookingFacade runs the booking form: validate, check availability,
// then create or update through a single mutation.
type BookingFacade struct {
	api       BookingGateway
	store     *DataStore
	notifier  notification.Service
	sessionID string
	logger    logger.Logger
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notification.Nop{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingFacade{
		api:       opts.API,
		store:     opts.Store,
		notifier:  notifier,
		sessionID: opts.SessionID,
		logger:    log,
	}
}

// FormResult reports where the form ended up.
type FormResult struct {
	Form      *models.BookingForm  `json:"form"`
	Booking   *models.Booking      `json:"booking,omitempty"`
	Conflicts []dto.ConflictRecord `json:"conflicts,omitempty"`
	Quote     *dto.PriceQuote      `json:"quote,omitempty"`
}

// Submit creates the booking, or updates booking editingID when non-zero.
// The returned result is always non-nil and carries the form state.
func (f *BookingFacade) Submit(ctx context.Context, req dto.BookingFormRequest, editingID uint) (*FormResult, error) {
	result := &FormResult{Form: models.NewBookingForm()}
	form := result.Form
	if err := form.Advance(); err != nil {
		return result, err
	}

	input, err := validator.ValidateBookingForm(req)
	if err != nil {
		_ = form.Reject(messageOf(err))
		return result, err
	}
	if err := form.Advance(); err != nil {
		return result, err
	}

	conflicts, err := f.checkAvailability(ctx, input, editingID)
	if err != nil {
		_ = form.Reject(messageOf(err))
		if !errors.HasCode(err, errors.ErrCodeAvailabilityConflict) {
			f.toast(notification.ToastError, messageOf(err))
		}
		return result, err
	}
	if len(conflicts) > 0 {
		result.Conflicts = conflicts
		err := errors.NewAppError(errors.ErrCodeAvailabilityConflict, conflictMessage(conflicts), nil)
		_ = form.Reject(err.Message)
		return result, err
	}

	total, quote, err := f.autoTotal(ctx, input)
	if err != nil {
		_ = form.Reject(messageOf(err))
		f.toast(notification.ToastError, messageOf(err))
		return result, err
	}
	result.Quote = quote

	if err := form.Advance(); err != nil {
		return result, err
	}

	booking := f.build(input, editingID, total)
	saved, err := f.save(ctx, *booking, editingID)
	if err != nil {
		_ = form.Reject(messageOf(err))
		f.toast(notification.ToastError, messageOf(err))
		return result, err
	}
	result.Booking = saved
	_ = form.Advance()

	if editingID != 0 {
		f.toast(notification.ToastSuccess, "Booking updated")
	} else {
		f.toast(notification.ToastSuccess, "Booking created")
	}
	return result, nil
}

// checkAvailability returns the conflicting bookings, ignoring the booking
// being edited.
func (f *BookingFacade) checkAvailability(ctx context.Context, input *validator.BookingInput, editingID uint) ([]dto.ConflictRecord, error) {
	res, err := f.api.CheckAvailability(ctx, input.Request.VillaID, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if res.Available {
		return nil, nil
	}

	conflicts := []dto.ConflictRecord{}
	for _, c := range res.ConflictingBookings {
		if editingID != 0 && c.ID == editingID {
			continue
		}
		conflicts = append(conflicts, c)
	}
	if len(conflicts) == 0 && len(res.ConflictingBookings) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeAvailabilityConflict, "Villa is not available for the selected dates", nil)
	}
	return conflicts, nil
}

// autoTotal uses the total sent with the form, or asks the API for it.
// Blocked dates are not priced.
func (f *BookingFacade) autoTotal(ctx context.Context, input *validator.BookingInput) (models.Amount, *dto.PriceQuote, error) {
	if input.Request.Status == constants.BookingStatusBlocked {
		return 0, nil, nil
	}
	if input.Request.TotalPayment != nil {
		return models.Amount(*input.Request.TotalPayment), nil, nil
	}
	quote, err := f.api.CalculatePrice(ctx, input.Request.VillaID, input.CheckIn, input.CheckOut)
	if err != nil {
		return 0, nil, err
	}
	return quote.TotalPayment, quote, nil
}

func (f *BookingFacade) build(input *validator.BookingInput, editingID uint, total models.Amount) *models.Booking {
	req := input.Request
	var override *models.Amount
	if req.OverrideTotalPayment != nil {
		override = models.AmountPtr(*req.OverrideTotalPayment)
	}
	return builders.NewBookingBuilder().
		WithID(editingID).
		WithVilla(req.VillaID).
		WithStatus(req.Status).
		WithClient(req.ClientName, input.Phone, req.ClientEmail).
		WithStay(input.CheckIn, input.CheckOut).
		WithGuests(req.NumberOfGuests).
		WithNotes(req.Notes).
		WithSource(req.BookingSource).
		WithPayment(req.PaymentStatus, total, override, models.Amount(req.AdvancePayment)).
		Build()
}

func (f *BookingFacade) save(ctx context.Context, booking models.Booking, editingID uint) (*models.Booking, error) {
	if editingID != 0 {
		cmd := commands.NewUpdateBookingCommand(booking, f.api)
		if err := f.store.Execute(ctx, cmd); err != nil {
			return nil, err
		}
		return cmd.Result, nil
	}
	cmd := commands.NewCreateBookingCommand(booking, f.api)
	if err := f.store.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	return cmd.Result, nil
}

// Delete removes a booking.
func (f *BookingFacade) Delete(ctx context.Context, bookingID uint) error {
	if err := f.store.Execute(ctx, commands.NewDeleteBookingCommand(bookingID, f.api)); err != nil {
		f.toast(notification.ToastError, messageOf(err))
		return err
	}
	f.toast(notification.ToastSuccess, "Booking deleted")
	return nil
}

func (f *BookingFacade) toast(kind, message string) {
	if err := f.notifier.Notify(f.sessionID, notification.Toast{Type: kind, Message: message}); err != nil {
		f.logger.Debug("toast not delivered: %v", err)
	}
}

func conflictMessage(conflicts []dto.ConflictRecord) string {
	c := conflicts[0]
	msg := fmt.Sprintf("Villa is already booked by %s from %s to %s", c.ClientName, c.CheckIn, c.CheckOut)
	if len(conflicts) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(conflicts)-1)
	}
	return msg
}

func messageOf(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "An unexpected error occurred"
}
