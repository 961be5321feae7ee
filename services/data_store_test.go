package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/commands"
	"villadash/constants"
	"villadash/errors"
	"villadash/models"
	"villadash/services/logger"
)

func newTestStore(api *fakeAPI) (*DataStore, *MemoryCache) {
	cache := NewMemoryCache()
	return NewDataStore(DataStoreOptions{
		Cache:     cache,
		API:       api,
		SessionID: "sid-1",
		Logger:    logger.Nop(),
	}), cache
}

func TestDataStoreReadThrough(t *testing.T) {
	api := newFakeAPI()
	api.villas = []models.Villa{{ID: 1, Name: "Palm Villa"}}
	store, _ := newTestStore(api)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		villas, err := store.Villas(ctx)
		require.NoError(t, err)
		require.Len(t, villas, 1)
	}
	assert.Equal(t, 1, api.count("ListVillas"))
}

func TestDataStoreSpecialDaysMissingEndpoint(t *testing.T) {
	api := newFakeAPI()
	api.specialErr = errors.NewAppError(errors.ErrCodeNotFound, "Not Found", nil)
	store, _ := newTestStore(api)

	days, err := store.SpecialDays(context.Background())
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestDataStoreRefreshKeepsCacheOnFailure(t *testing.T) {
	api := newFakeAPI()
	api.villas = []models.Villa{{ID: 1, Name: "Palm Villa"}}
	store, _ := newTestStore(api)
	ctx := context.Background()

	require.NoError(t, store.Refresh(ctx))
	api.villas = []models.Villa{{ID: 1, Name: "Renamed"}}
	api.listErr = errAPIDown

	assert.Error(t, store.Refresh(ctx))
	villas, err := store.Villas(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Palm Villa", villas[0].Name)
}

func TestDataStoreExecuteInvalidatesTouchedLists(t *testing.T) {
	api := newFakeAPI()
	api.villas = []models.Villa{{ID: 1, Name: "Palm Villa"}}
	store, _ := newTestStore(api)
	ctx := context.Background()

	_, err := store.Villas(ctx)
	require.NoError(t, err)
	_, err = store.Bookings(ctx)
	require.NoError(t, err)

	cmd := commands.NewCreateBookingCommand(models.Booking{VillaID: 1, ClientName: "Asha"}, api)
	require.NoError(t, store.Execute(ctx, cmd))

	assert.Equal(t, 2, api.count("ListBookings"), "bookings refetched")
	assert.Equal(t, 1, api.count("ListVillas"), "villas untouched")
	bookings, err := store.Bookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestDataStoreExecuteFailureLeavesCache(t *testing.T) {
	api := newFakeAPI()
	api.bookings = []models.Booking{{ID: 1, ClientName: "Asha"}}
	store, _ := newTestStore(api)
	ctx := context.Background()

	_, err := store.Bookings(ctx)
	require.NoError(t, err)

	api.mutateErr = errAPIDown
	err = store.Execute(ctx, commands.NewDeleteBookingCommand(1, api))
	assert.True(t, errors.HasCode(err, errors.ErrCodeNetwork))
	assert.Equal(t, 1, api.count("ListBookings"))

	b, err := store.BookingByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Asha", b.ClientName)
}

func TestDataStoreLookups(t *testing.T) {
	api := newFakeAPI()
	api.villas = []models.Villa{{ID: 1}, {ID: 2}}
	api.bookings = []models.Booking{{ID: 1, VillaID: 1}, {ID: 2, VillaID: 2}, {ID: 3, VillaID: 1}}
	store, _ := newTestStore(api)
	ctx := context.Background()

	_, err := store.VillaByID(ctx, 9)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	_, err = store.BookingByID(ctx, 9)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))

	own, err := store.BookingsForVilla(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, own, 2)
}

func TestBuildOverview(t *testing.T) {
	today := models.MustParseDate("2025-06-12")
	villas := []models.Villa{
		{ID: 1, Status: constants.VillaStatusActive},
		{ID: 2, Status: constants.VillaStatusMaintenance},
	}
	bookings := []models.Booking{
		{ID: 1, VillaID: 1, Status: constants.BookingStatusBooked,
			CheckIn: models.MustParseDate("2025-06-10"), CheckOut: today},
		{ID: 2, VillaID: 1, Status: constants.BookingStatusBooked,
			CheckIn: today, CheckOut: models.MustParseDate("2025-06-14")},
		{ID: 3, VillaID: 2, Status: constants.BookingStatusBlocked,
			CheckIn: models.MustParseDate("2025-06-11"), CheckOut: models.MustParseDate("2025-06-13")},
		{ID: 4, VillaID: 2, Status: constants.BookingStatusBooked,
			CheckIn: models.MustParseDate("2025-06-19"), CheckOut: models.MustParseDate("2025-06-21")},
	}

	o := BuildOverview(villas, bookings, today)
	assert.Equal(t, 2, o.TotalVillas)
	assert.Equal(t, 1, o.ActiveVillas)
	require.Len(t, o.CheckIns, 1)
	assert.Equal(t, uint(2), o.CheckIns[0].ID)
	require.Len(t, o.CheckOuts, 1)
	assert.Equal(t, uint(1), o.CheckOuts[0].ID)
	assert.Equal(t, 1, o.CurrentlyBooked, "blocked dates are not stays")
	assert.Equal(t, 1, o.Upcoming7Days)
}
