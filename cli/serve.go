package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"villadash/config"
	"villadash/jobs"
	"villadash/routes"
	"villadash/services"
	"villadash/services/logger"
	"villadash/services/notification"
	"villadash/services/session"
	"villadash/services/villaapi"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	app, err := config.InitApp(cfg)
	if err != nil {
		log.Error("Failed to initialize app: %v", err)
		return err
	}

	httpClient := &http.Client{Timeout: cfg.APITimeout}
	notifier := notification.NewMelodyService(app.Melody)
	var uploader services.Uploader
	if app.Cloudinary != nil {
		uploader = services.NewCloudinaryUploader(app.Cloudinary)
	}

	sessions := session.NewRedisStore(session.RedisStoreOptions{
		Client: app.Redis,
		TTL:    cfg.SessionTTL,
		Expiry: services.TokenExpiry,
	})
	factory := services.NewWorkspaceFactory(services.WorkspaceFactoryOptions{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: httpClient,
		Refresher: villaapi.NewRefresher(villaapi.RefresherOptions{
			BaseURL:    cfg.APIBaseURL,
			HTTPClient: httpClient,
			Logger:     log,
		}),
		Cache:    services.NewRedisCache(app.Redis),
		CacheTTL: cfg.CacheTTL,
		Notifier: notifier,
		Uploader: uploader,
		Logger:   log,
	})

	if err := jobs.InitCronJobs(app.Cron, notifier, log); err != nil {
		log.Error("Failed to initialize cron jobs: %v", err)
		return err
	}
	defer app.Cron.Stop()

	routes.SetupRoutes(app, routes.Deps{
		Sessions: sessions,
		Factory:  factory,
		Logger:   log,
	})

	log.Info("Server starting on port %s, API %s", cfg.Port, cfg.APIBaseURL)
	return app.Router.Run(":" + cfg.Port)
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogDir == "" {
		return logger.NewDefaultLogger(level), nil
	}
	return logger.NewFileLogger(level, cfg.LogDir)
}
