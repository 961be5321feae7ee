package services

import (
	"context"
	"sync"

	"villadash/dto"
	"villadash/errors"
	"villadash/models"
)

// fakeAPI stands in for the villa API client.
type fakeAPI struct {
	mu sync.Mutex

	villas      []models.Villa
	bookings    []models.Booking
	specialDays []models.GlobalSpecialDay

	availability *dto.AvailabilityResponse
	quote        *dto.PriceQuote
	listErr      error
	specialErr   error
	mutateErr    error
	availErr     error
	quoteErr     error

	calls   map[string]int
	created []models.Booking
	updated []models.Booking
	patched map[uint]map[string]interface{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		availability: &dto.AvailabilityResponse{Available: true},
		quote:        &dto.PriceQuote{TotalPayment: 17000, Nights: 3},
		calls:        map[string]int{},
		patched:      map[uint]map[string]interface{}{},
	}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) ListVillas(ctx context.Context, status string) ([]models.Villa, error) {
	f.record("ListVillas")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Villa(nil), f.villas...), nil
}

func (f *fakeAPI) ListBookings(ctx context.Context, filter dto.BookingFilter) ([]models.Booking, error) {
	f.record("ListBookings")
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Booking(nil), f.bookings...), nil
}

func (f *fakeAPI) ListSpecialDays(ctx context.Context) ([]models.GlobalSpecialDay, error) {
	f.record("ListSpecialDays")
	if f.specialErr != nil {
		return nil, f.specialErr
	}
	return append([]models.GlobalSpecialDay(nil), f.specialDays...), nil
}

func (f *fakeAPI) CreateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	f.record("CreateBooking")
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = uint(100 + len(f.created))
	f.created = append(f.created, b)
	f.bookings = append(f.bookings, b)
	return &b, nil
}

func (f *fakeAPI) UpdateBooking(ctx context.Context, b models.Booking) (*models.Booking, error) {
	f.record("UpdateBooking")
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, b)
	return &b, nil
}

func (f *fakeAPI) DeleteBooking(ctx context.Context, id uint) error {
	f.record("DeleteBooking")
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.bookings[:0]
	for _, b := range f.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.bookings = kept
	return nil
}

func (f *fakeAPI) CheckAvailability(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.AvailabilityResponse, error) {
	f.record("CheckAvailability")
	if f.availErr != nil {
		return nil, f.availErr
	}
	return f.availability, nil
}

func (f *fakeAPI) CalculatePrice(ctx context.Context, villaID uint, checkIn, checkOut models.Date) (*dto.PriceQuote, error) {
	f.record("CalculatePrice")
	if f.quoteErr != nil {
		return nil, f.quoteErr
	}
	return f.quote, nil
}

func (f *fakeAPI) CreateVilla(ctx context.Context, v models.Villa) (*models.Villa, error) {
	f.record("CreateVilla")
	v.ID = 50
	return &v, f.mutateErr
}

func (f *fakeAPI) UpdateVilla(ctx context.Context, v models.Villa) (*models.Villa, error) {
	f.record("UpdateVilla")
	return &v, f.mutateErr
}

func (f *fakeAPI) PatchVilla(ctx context.Context, id uint, fields map[string]interface{}) (*models.Villa, error) {
	f.record("PatchVilla")
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	f.mu.Lock()
	f.patched[id] = fields
	f.mu.Unlock()
	img, _ := fields["image"].(string)
	return &models.Villa{ID: id, Image: img}, nil
}

func (f *fakeAPI) DeleteVilla(ctx context.Context, id uint) error {
	f.record("DeleteVilla")
	return f.mutateErr
}

func (f *fakeAPI) CreateSpecialDay(ctx context.Context, req dto.SpecialDayRequest) (*models.GlobalSpecialDay, error) {
	f.record("CreateSpecialDay")
	return &models.GlobalSpecialDay{ID: 1, Name: req.Name, Day: req.Day, Month: req.Month}, f.mutateErr
}

func (f *fakeAPI) DeleteSpecialDay(ctx context.Context, id uint) error {
	f.record("DeleteSpecialDay")
	return f.mutateErr
}

var errAPIDown = errors.NewAppError(errors.ErrCodeNetwork, "Network error", nil)
