package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"villadash/dto"
	"villadash/errors"
	"villadash/models"
	"villadash/response"
	"villadash/services"
	"villadash/services/logger"
)

type CalendarController struct {
	cache  services.Cache
	loc    *time.Location
	logger logger.Logger
}

func NewCalendarController(cache services.Cache, loc *time.Location, log logger.Logger) *CalendarController {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarController{cache: cache, loc: loc, logger: log}
}

// Get builds the month grid. Missing ?month and ?villa fall back to the
// session's last view; ?villa=all shows every villa.
func (ctrl *CalendarController) Get(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	today := models.Today(ctrl.loc)

	requested := services.CalendarView{Month: c.Query("month"), VillaID: queryUint(c, "villa")}
	last, err := services.GetLastCalendarView(ctx, ctrl.cache, ws.Session.ID)
	if err != nil {
		ctrl.logger.Error("read last calendar view: %v", err)
	}
	view := services.MergeCalendarView(last, requested, today)
	if c.Query("villa") == "all" {
		view.VillaID = 0
	}

	month, err := services.ParseMonth(view.Month)
	if err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeInvalidFormat, "Month must be YYYY-MM", err))
		return
	}

	villas, err := ws.Store.Villas(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if view.VillaID != 0 {
		villas = onlyVilla(villas, view.VillaID)
	}
	specialDays, err := ws.Store.SpecialDays(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}
	start, end := services.MonthRange(month)
	bookings, err := ws.API.CalendarBookings(ctx, dto.CalendarQuery{Start: start, End: end, VillaID: view.VillaID})
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := services.SaveLastCalendarView(ctx, ctrl.cache, ws.Session.ID, view); err != nil {
		ctrl.logger.Error("save calendar view: %v", err)
	}
	response.Success(c, services.BuildGrid(services.GridInput{
		Month:       month,
		Villas:      villas,
		Bookings:    bookings,
		SpecialDays: specialDays,
		Today:       today,
	}))
}

func onlyVilla(villas []models.Villa, id uint) []models.Villa {
	for _, v := range villas {
		if v.ID == id {
			return []models.Villa{v}
		}
	}
	return []models.Villa{}
}
