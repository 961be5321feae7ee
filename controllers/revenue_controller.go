package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"villadash/models"
	"villadash/response"
	"villadash/services/logger"
)

type DashboardController struct {
	loc    *time.Location
	logger logger.Logger
}

func NewDashboardController(loc *time.Location, log logger.Logger) *DashboardController {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardController{loc: loc, logger: log}
}

// Overview proxies the API dashboard figures for ?date, today by default.
func (ctrl *DashboardController) Overview(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	date := models.Today(ctrl.loc)
	if raw := c.Query("date"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		date = d
	}
	overview, err := ws.API.DashboardOverview(c.Request.Context(), date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, overview)
}

// Local derives today's arrivals, departures and occupancy from the cache.
func (ctrl *DashboardController) Local(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	overview, err := ws.Store.Overview(c.Request.Context(), models.Today(ctrl.loc))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, overview)
}

func (ctrl *DashboardController) Recent(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	bookings, err := ws.API.RecentBookings(c.Request.Context(), queryInt(c, "limit", 5))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (ctrl *DashboardController) Revenue(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	points, err := ws.API.RevenueChart(c.Request.Context(), queryInt(c, "months", 6))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, points)
}

func (ctrl *DashboardController) Villas(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	perf, err := ws.API.VillaPerformance(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, perf)
}

func (ctrl *DashboardController) Sources(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	shares, err := ws.API.BookingSources(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, shares)
}

// RefreshCache refetches every cached list of the session.
func (ctrl *DashboardController) RefreshCache(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	if err := ws.Store.Refresh(c.Request.Context()); err != nil {
		ctrl.logger.Error("refresh cache of session %s: %v", ws.Session.ID, err)
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
