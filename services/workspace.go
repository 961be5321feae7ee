package services

import (
	"net/http"
	"time"

	"villadash/services/logger"
	"villadash/services/notification"
	"villadash/services/session"
	"villadash/services/villaapi"
)

// Workspace bundles what one request of a dashboard session works with.
type Workspace struct {
	Session  *session.Session
	API      *villaapi.Client
	Store    *DataStore
	Bookings *BookingFacade
	Preview  *PricePreviewService
	Villas   *VillaService
	Media    *MediaService
}

type WorkspaceFactoryOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Refresher  *villaapi.Refresher
	Cache      Cache
	CacheTTL   time.Duration
	Notifier   notification.Service
	Uploader   Uploader
	Logger     logger.Logger
}

// WorkspaceFactory builds workspaces sharing one HTTP client, token
// refresher and cache.
type WorkspaceFactory struct {
	opts WorkspaceFactoryOptions
}

func NewWorkspaceFactory(opts WorkspaceFactoryOptions) *WorkspaceFactory {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Refresher == nil {
		opts.Refresher = villaapi.NewRefresher(villaapi.RefresherOptions{
			BaseURL:    opts.BaseURL,
			HTTPClient: opts.HTTPClient,
			Logger:     opts.Logger,
		})
	}
	if opts.Cache == nil {
		opts.Cache = NewMemoryCache()
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.Nop{}
	}
	return &WorkspaceFactory{opts: opts}
}

// Cache returns the shared list cache.
func (f *WorkspaceFactory) Cache() Cache {
	return f.opts.Cache
}

func (f *WorkspaceFactory) For(sess *session.Session) *Workspace {
	api := villaapi.New(villaapi.Options{
		BaseURL:    f.opts.BaseURL,
		HTTPClient: f.opts.HTTPClient,
		Tokens:     sess,
		Refresher:  f.opts.Refresher,
		Logger:     f.opts.Logger,
	})
	store := NewDataStore(DataStoreOptions{
		Cache:     f.opts.Cache,
		API:       api,
		SessionID: sess.ID,
		TTL:       f.opts.CacheTTL,
		Logger:    f.opts.Logger,
	})
	return &Workspace{
		Session: sess,
		API:     api,
		Store:   store,
		Bookings: NewBookingFacade(BookingFacadeOptions{
			API:       api,
			Store:     store,
			Notifier:  f.opts.Notifier,
			SessionID: sess.ID,
			Logger:    f.opts.Logger,
		}),
		Preview: NewPricePreviewService(api),
		Villas:  NewVillaService(api, store, f.opts.Notifier, sess.ID),
		Media:   NewMediaService(f.opts.Uploader, api, store),
	}
}
