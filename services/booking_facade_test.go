package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/constants"
	"villadash/dto"
	"villadash/errors"
	"villadash/models"
	"villadash/services/logger"
	"villadash/services/notification"
)

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []notification.Toast
}

func (n *recordingNotifier) SendMessage(string) error { return nil }

func (n *recordingNotifier) Notify(sessionID string, toast notification.Toast) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast)
	return nil
}

func (n *recordingNotifier) Broadcast(toast notification.Toast) error {
	return n.Notify("", toast)
}

func newTestFacade(api *fakeAPI) (*BookingFacade, *recordingNotifier) {
	store, _ := newTestStore(api)
	notifier := &recordingNotifier{}
	return NewBookingFacade(BookingFacadeOptions{
		API:       api,
		Store:     store,
		Notifier:  notifier,
		SessionID: "sid-1",
		Logger:    logger.Nop(),
	}), notifier
}

func formRequest() dto.BookingFormRequest {
	return dto.BookingFormRequest{
		VillaID:        3,
		ClientName:     "Asha",
		ClientPhone:    "9876543210",
		CheckIn:        "2025-06-11",
		CheckOut:       "2025-06-14",
		PaymentStatus:  constants.PaymentStatusAdvance,
		AdvancePayment: 5000,
	}
}

func TestSubmitSameDayMakesNoCalls(t *testing.T) {
	api := newFakeAPI()
	facade, _ := newTestFacade(api)

	req := formRequest()
	req.CheckIn, req.CheckOut = "2025-06-10", "2025-06-10"
	result, err := facade.Submit(context.Background(), req, 0)

	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
	assert.Equal(t, models.FormIdle, result.Form.Status)
	assert.NotEmpty(t, result.Form.Error)
	assert.Zero(t, api.count("CheckAvailability"))
	assert.Zero(t, api.count("CreateBooking"))
}

func TestSubmitCreatesBooking(t *testing.T) {
	api := newFakeAPI()
	facade, notifier := newTestFacade(api)

	result, err := facade.Submit(context.Background(), formRequest(), 0)
	require.NoError(t, err)

	assert.Equal(t, models.FormSuccess, result.Form.Status)
	require.NotNil(t, result.Booking)
	assert.Equal(t, uint(100), result.Booking.ID)
	require.Len(t, api.created, 1)
	sent := api.created[0]
	assert.Equal(t, models.Amount(17000), sent.TotalPayment, "auto total from the price endpoint")
	assert.Equal(t, models.Amount(12000), sent.PendingPayment)
	assert.Equal(t, 3, sent.Nights)
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, notification.ToastSuccess, notifier.toasts[0].Type)
}

func TestSubmitConflictReturnsToIdle(t *testing.T) {
	api := newFakeAPI()
	api.availability = &dto.AvailabilityResponse{
		Available: false,
		ConflictingBookings: []dto.ConflictRecord{{
			ID: 7, ClientName: "Ravi",
			CheckIn: models.MustParseDate("2025-06-12"), CheckOut: models.MustParseDate("2025-06-15"),
		}},
	}
	facade, _ := newTestFacade(api)

	result, err := facade.Submit(context.Background(), formRequest(), 0)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAvailabilityConflict))
	assert.Equal(t, models.FormIdle, result.Form.Status)
	assert.Contains(t, result.Form.Error, "Ravi")
	require.Len(t, result.Conflicts, 1)
	assert.Zero(t, api.count("CreateBooking"))
}

func TestSubmitEditIgnoresItsOwnBooking(t *testing.T) {
	api := newFakeAPI()
	api.availability = &dto.AvailabilityResponse{
		Available:           false,
		ConflictingBookings: []dto.ConflictRecord{{ID: 7, ClientName: "Asha"}},
	}
	facade, _ := newTestFacade(api)

	result, err := facade.Submit(context.Background(), formRequest(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.FormSuccess, result.Form.Status)
	require.Len(t, api.updated, 1)
	assert.Equal(t, uint(7), api.updated[0].ID)
}

func TestSubmitUsesProvidedTotalAndOverride(t *testing.T) {
	api := newFakeAPI()
	facade, _ := newTestFacade(api)

	total, override := 20000.0, 18000.0
	req := formRequest()
	req.TotalPayment = &total
	req.OverrideTotalPayment = &override

	_, err := facade.Submit(context.Background(), req, 0)
	require.NoError(t, err)
	assert.Zero(t, api.count("CalculatePrice"))
	sent := api.created[0]
	assert.Equal(t, models.Amount(20000), sent.TotalPayment)
	assert.Equal(t, models.Amount(13000), sent.PendingPayment, "pending uses the override")
}

func TestSubmitBlockedSkipsPricing(t *testing.T) {
	api := newFakeAPI()
	facade, _ := newTestFacade(api)

	req := formRequest()
	req.Status = constants.BookingStatusBlocked
	req.ClientName = ""
	_, err := facade.Submit(context.Background(), req, 0)
	require.NoError(t, err)

	assert.Zero(t, api.count("CalculatePrice"))
	sent := api.created[0]
	assert.Equal(t, "Blocked", sent.ClientName)
	assert.Equal(t, models.Amount(0), sent.TotalPayment)
	assert.Empty(t, sent.ClientPhone)
}

func TestSubmitSaveFailureEndsInError(t *testing.T) {
	api := newFakeAPI()
	api.mutateErr = errAPIDown
	facade, notifier := newTestFacade(api)

	result, err := facade.Submit(context.Background(), formRequest(), 0)
	assert.Error(t, err)
	assert.Equal(t, models.FormError, result.Form.Status)
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, notification.ToastError, notifier.toasts[0].Type)
}

func TestSubmitAvailabilityFailureToasts(t *testing.T) {
	api := newFakeAPI()
	api.availErr = errAPIDown
	facade, notifier := newTestFacade(api)

	result, err := facade.Submit(context.Background(), formRequest(), 0)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNetwork))
	assert.Equal(t, models.FormIdle, result.Form.Status)
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, notification.ToastError, notifier.toasts[0].Type)
	assert.Equal(t, "Network error", notifier.toasts[0].Message)
	assert.Zero(t, api.count("CreateBooking"))
}

func TestSubmitQuoteFailureToasts(t *testing.T) {
	api := newFakeAPI()
	api.quoteErr = errAPIDown
	facade, notifier := newTestFacade(api)

	result, err := facade.Submit(context.Background(), formRequest(), 0)
	assert.Error(t, err)
	assert.Equal(t, models.FormIdle, result.Form.Status)
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, notification.ToastError, notifier.toasts[0].Type)
	assert.Zero(t, api.count("CreateBooking"))
}

func TestSubmitUnavailableWithoutRecordsDoesNotToast(t *testing.T) {
	api := newFakeAPI()
	api.availability = &dto.AvailabilityResponse{Available: false}
	facade, notifier := newTestFacade(api)

	_, err := facade.Submit(context.Background(), formRequest(), 0)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAvailabilityConflict))
	assert.Empty(t, notifier.toasts)
}

func TestPreview(t *testing.T) {
	api := newFakeAPI()
	svc := NewPricePreviewService(api)
	override := 15000.0

	p, err := svc.Preview(context.Background(), dto.PreviewRequest{
		VillaID:              3,
		CheckIn:              "2025-06-11",
		CheckOut:             "2025-06-14",
		OverrideTotalPayment: &override,
		AdvancePayment:       5000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Amount(17000), p.AutoTotal)
	assert.Equal(t, models.Amount(15000), p.EffectiveTotal)
	assert.Equal(t, models.Amount(10000), p.PendingPayment)

	_, err = svc.Preview(context.Background(), dto.PreviewRequest{VillaID: 3, CheckIn: "2025-06-11", CheckOut: "2025-06-11"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDateRange))
	assert.Equal(t, 1, api.count("CalculatePrice"))
}
