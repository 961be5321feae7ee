package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"villadash/commands"
	"villadash/constants"
	"villadash/dto"
	"villadash/errors"
	"villadash/models"
	"villadash/services/logger"
)

// DomainAPI is the read side of the API client used by the DataStore.
type DomainAPI interface {
	ListVillas(ctx context.Context, status string) ([]models.Villa, error)
	ListBookings(ctx context.Context, filter dto.BookingFilter) ([]models.Booking, error)
	ListSpecialDays(ctx context.Context) ([]models.GlobalSpecialDay, error)
}

type DataStoreOptions struct {
	Cache     Cache
	API       DomainAPI
	SessionID string
	TTL       time.Duration
	Logger    logger.Logger
}

// DataStore is a read-through projection of the villa, booking and special
// day lists of one session. Lists are only written after a successful fetch,
// and mutations invalidate and refetch what they touched.
type DataStore struct {
	cache     Cache
	api       DomainAPI
	sessionID string
	ttl       time.Duration
	logger    logger.Logger
}

func NewDataStore(opts DataStoreOptions) *DataStore {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = constants.DefaultCacheTTL
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &DataStore{
		cache:     opts.Cache,
		api:       opts.API,
		sessionID: opts.SessionID,
		ttl:       ttl,
		logger:    log,
	}
}

func (s *DataStore) key(prefix string) string {
	return prefix + s.sessionID
}

// Villas returns the cached villa list, fetching it on a miss.
func (s *DataStore) Villas(ctx context.Context) ([]models.Villa, error) {
	return readThrough(ctx, s, constants.CacheVillas, s.fetchVillas)
}

// Bookings returns the cached booking list, fetching it on a miss.
func (s *DataStore) Bookings(ctx context.Context) ([]models.Booking, error) {
	return readThrough(ctx, s, constants.CacheBookings, s.fetchBookings)
}

// SpecialDays returns the cached global special days, fetching on a miss.
func (s *DataStore) SpecialDays(ctx context.Context) ([]models.GlobalSpecialDay, error) {
	return readThrough(ctx, s, constants.CacheSpecialDays, s.fetchSpecialDays)
}

func readThrough[T any](ctx context.Context, s *DataStore, prefix string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	found, err := s.cache.Get(ctx, s.key(prefix), &cached)
	if err != nil {
		s.logger.Error("cache read %s failed: %v", prefix, err)
	}
	if found {
		return cached, nil
	}

	fresh, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, s.key(prefix), fresh, s.ttl); err != nil {
		s.logger.Error("cache write %s failed: %v", prefix, err)
	}
	return fresh, nil
}

func (s *DataStore) fetchVillas(ctx context.Context) ([]models.Villa, error) {
	return s.api.ListVillas(ctx, "")
}

func (s *DataStore) fetchBookings(ctx context.Context) ([]models.Booking, error) {
	return s.api.ListBookings(ctx, dto.BookingFilter{})
}

// fetchSpecialDays treats a missing list endpoint as no special days.
func (s *DataStore) fetchSpecialDays(ctx context.Context) ([]models.GlobalSpecialDay, error) {
	days, err := s.api.ListSpecialDays(ctx)
	if errors.HasCode(err, errors.ErrCodeNotFound) {
		s.logger.Debug("special days endpoint not available: %v", err)
		return []models.GlobalSpecialDay{}, nil
	}
	return days, err
}

// Refresh refetches every list concurrently. The cache is only replaced
// when all fetches succeed.
func (s *DataStore) Refresh(ctx context.Context) error {
	var (
		villas      []models.Villa
		bookings    []models.Booking
		specialDays []models.GlobalSpecialDay
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		villas, err = s.fetchVillas(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.fetchBookings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		specialDays, err = s.fetchSpecialDays(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for prefix, value := range map[string]interface{}{
		constants.CacheVillas:      villas,
		constants.CacheBookings:    bookings,
		constants.CacheSpecialDays: specialDays,
	} {
		if err := s.cache.Set(ctx, s.key(prefix), value, s.ttl); err != nil {
			s.logger.Error("cache write %s failed: %v", prefix, err)
		}
	}
	return nil
}

// Invalidate drops the given lists; all lists when none are given.
func (s *DataStore) Invalidate(ctx context.Context, prefixes ...string) error {
	if len(prefixes) == 0 {
		prefixes = []string{constants.CacheVillas, constants.CacheBookings, constants.CacheSpecialDays}
	}
	keys := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		keys = append(keys, s.key(p))
	}
	return s.cache.Delete(ctx, keys...)
}

// Execute runs a mutation. On failure the cache is left as it was; on
// success the touched lists are invalidated and fetched again.
func (s *DataStore) Execute(ctx context.Context, cmd commands.Command) error {
	if err := cmd.Execute(ctx); err != nil {
		return err
	}

	touched := cmd.Touches()
	if err := s.Invalidate(ctx, touched...); err != nil {
		s.logger.Error("cache invalidate failed: %v", err)
	}
	for _, prefix := range touched {
		var err error
		switch prefix {
		case constants.CacheVillas:
			_, err = s.Villas(ctx)
		case constants.CacheBookings:
			_, err = s.Bookings(ctx)
		case constants.CacheSpecialDays:
			_, err = s.SpecialDays(ctx)
		}
		if err != nil {
			s.logger.Error("refetch %s after mutation failed: %v", prefix, err)
		}
	}
	return nil
}

// VillaByID looks a villa up in the cached list.
func (s *DataStore) VillaByID(ctx context.Context, id uint) (*models.Villa, error) {
	villas, err := s.Villas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range villas {
		if villas[i].ID == id {
			v := villas[i]
			return &v, nil
		}
	}
	return nil, errors.ErrVillaNotFound
}

// BookingByID looks a booking up in the cached list.
func (s *DataStore) BookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			b := bookings[i]
			return &b, nil
		}
	}
	return nil, errors.ErrBookingNotFound
}

// BookingsForVilla returns the cached bookings of one villa.
func (s *DataStore) BookingsForVilla(ctx context.Context, villaID uint) ([]models.Booking, error) {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, b := range bookings {
		if b.VillaID == villaID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Overview derives today's figures from the cached lists.
func (s *DataStore) Overview(ctx context.Context, today models.Date) (*dto.LocalOverview, error) {
	villas, err := s.Villas(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	return BuildOverview(villas, bookings, today), nil
}

// BuildOverview counts check-ins, check-outs and occupied villas for today.
// Blocked dates are not stays and are ignored.
func BuildOverview(villas []models.Villa, bookings []models.Booking, today models.Date) *dto.LocalOverview {
	o := &dto.LocalOverview{
		Date:        today,
		TotalVillas: len(villas),
		CheckIns:    []models.Booking{},
		CheckOuts:   []models.Booking{},
	}
	for _, v := range villas {
		if v.Status == constants.VillaStatusActive {
			o.ActiveVillas++
		}
	}

	occupied := map[uint]bool{}
	weekAhead := today.AddDays(7)
	for _, b := range bookings {
		if b.Status != constants.BookingStatusBooked {
			continue
		}
		if b.CheckIn.Equal(today) {
			o.CheckIns = append(o.CheckIns, b)
		}
		if b.CheckOut.Equal(today) {
			o.CheckOuts = append(o.CheckOuts, b)
		}
		if b.Occupies(today) {
			occupied[b.VillaID] = true
		}
		if b.CheckIn.After(today) && !b.CheckIn.After(weekAhead) {
			o.Upcoming7Days++
		}
	}
	o.CurrentlyBooked = len(occupied)
	return o
}
