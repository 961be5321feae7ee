package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"villadash/config"
	"villadash/controllers"
	middlewares "villadash/middleware"
	"villadash/services"
	"villadash/services/logger"
	"villadash/services/session"
)

// Deps are the long-lived collaborators shared by every handler.
type Deps struct {
	Sessions session.Store
	Factory  *services.WorkspaceFactory
	Logger   logger.Logger
}

func SetupRoutes(app *config.App, deps Deps) {
	router := app.Router
	cfg := app.Config
	loc := cfg.Location()

	router.Use(middlewares.RequestID(), middlewares.RequestLogger(deps.Logger), middlewares.ErrorHandler())

	authController := controllers.NewAuthController(controllers.AuthControllerOptions{
		Sessions:     deps.Sessions,
		Factory:      deps.Factory,
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.SecureCookie,
		Logger:       deps.Logger,
	})
	villaController := controllers.NewVillaController()
	bookingController := controllers.NewBookingController(loc, deps.Logger)
	calendarController := controllers.NewCalendarController(deps.Factory.Cache(), loc, deps.Logger)
	dashboardController := controllers.NewDashboardController(loc, deps.Logger)
	notificationController := controllers.NewNotificationController(deps.Sessions, app.Melody, deps.Logger)

	auth := middlewares.SessionAuth(deps.Sessions, deps.Factory, deps.Logger, cfg.SecureCookie)

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/logout", auth, authController.Logout)
	v1.GET("/auth/me", auth, authController.Me)
	v1.GET("/auth/session", auth, authController.Session)

	v1.GET("/villas", auth, villaController.List)
	v1.POST("/villas", auth, villaController.Create)
	v1.GET("/villas/:id", auth, villaController.Get)
	v1.PUT("/villas/:id", auth, villaController.Update)
	v1.DELETE("/villas/:id", auth, villaController.Delete)
	v1.POST("/villas/:id/image", auth, villaController.UploadImage)
	v1.GET("/villas/:id/bookings", auth, villaController.Bookings)
	v1.GET("/villas/:id/availability", auth, villaController.Availability)
	v1.POST("/pricing/estimate", auth, villaController.Estimate)

	v1.GET("/bookings", auth, bookingController.List)
	v1.GET("/bookings/search", auth, bookingController.Search)
	v1.GET("/bookings/export", auth, bookingController.Export)
	v1.POST("/bookings/preview", auth, bookingController.Preview)
	v1.GET("/bookings/:id", auth, bookingController.Get)
	v1.POST("/bookings", auth, bookingController.Create)
	v1.PUT("/bookings/:id", auth, bookingController.Update)
	v1.DELETE("/bookings/:id", auth, bookingController.Delete)

	v1.GET("/calendar", auth, calendarController.Get)

	v1.GET("/special-days", auth, controllers.GetSpecialDays)
	v1.POST("/special-days", auth, controllers.CreateSpecialDay)
	v1.DELETE("/special-days/:id", auth, controllers.DeleteSpecialDay)

	// dashboard
	v1.GET("/dashboard/overview", auth, dashboardController.Overview)
	v1.GET("/dashboard/local", auth, dashboardController.Local)
	v1.GET("/dashboard/recent", auth, dashboardController.Recent)
	v1.GET("/analytics/revenue", auth, dashboardController.Revenue)
	v1.GET("/analytics/villas", auth, dashboardController.Villas)
	v1.GET("/analytics/sources", auth, dashboardController.Sources)
	v1.POST("/cache/refresh", auth, dashboardController.RefreshCache)

	//ws
	router.GET("/ws", notificationController.Connect)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
