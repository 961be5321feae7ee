package config

import (
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"villadash/constants"
)

// App bundles the infrastructure shared by routes and jobs.
type App struct {
	Config     *Config
	Router     *gin.Engine
	Melody     *melody.Melody
	Cron       *cron.Cron
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

// InitApp builds the router, websocket hub, scheduler and clients.
func InitApp(cfg *Config) (*App, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", constants.SessionHeader)
	configCors.AddExposeHeaders(constants.SessionHeader)
	configCors.AllowCredentials = true
	if len(cfg.CORSOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	rdb, err := ConnectRedis(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cld, err := ConnectCloudinary(cfg)
	if err != nil {
		return nil, err
	}
	if cld == nil {
		log.Println("CLOUDINARY_URL not set, villa image upload disabled")
	}

	m := melody.New()
	c := cron.New(cron.WithLocation(cfg.Location()))

	log.Println("All components initialized successfully")
	return &App{
		Config:     cfg,
		Router:     router,
		Melody:     m,
		Cron:       c,
		Redis:      rdb,
		Cloudinary: cld,
	}, nil
}
