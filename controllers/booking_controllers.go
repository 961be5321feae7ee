package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"villadash/dto"
	"villadash/errors"
	"villadash/models"
	"villadash/response"
	"villadash/services"
	"villadash/services/logger"
)

type BookingController struct {
	loc    *time.Location
	logger logger.Logger
}

func NewBookingController(loc *time.Location, log logger.Logger) *BookingController {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingController{loc: loc, logger: log}
}

// List returns bookings. Without filters the cached list is used; with
// villa, status, date or ordering filters the API is queried directly.
// ?page (from 0) and ?limit page the result.
func (ctrl *BookingController) List(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	filter, err := bookingFilter(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	var bookings []models.Booking
	if filter == (dto.BookingFilter{}) {
		bookings, err = ws.Store.Bookings(c.Request.Context())
	} else {
		bookings, err = ws.API.ListBookings(c.Request.Context(), filter)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}

	if c.Query("limit") == "" {
		response.Success(c, bookings)
		return
	}
	page := queryInt(c, "page", 0)
	limit := queryInt(c, "limit", 20)
	start, end, limit := pageBounds(len(bookings), page, limit)
	response.SuccessWithPagination(c, bookings[start:end], page, limit, len(bookings))
}

// maxPageSize caps ?limit on paged lists.
const maxPageSize = 100

// pageBounds returns the slice bounds of page (from 0) over n items and the
// limit actually applied. Pages past the end are empty.
func pageBounds(n, page, limit int) (int, int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 0 || page > n/limit {
		return n, n, limit
	}
	start := page * limit
	end := start + limit
	if end > n {
		end = n
	}
	return start, end, limit
}

func bookingFilter(c *gin.Context) (dto.BookingFilter, error) {
	filter := dto.BookingFilter{
		VillaID:  queryUint(c, "villa"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	for name, target := range map[string]*models.Date{"from": &filter.Start, "to": &filter.End} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			return filter, errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("Invalid %s date", name), err)
		}
		*target = d
	}
	return filter, nil
}

func (ctrl *BookingController) Get(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	booking, err := ws.Store.BookingByID(c.Request.Context(), id)
	if errors.Is(err, errors.ErrBookingNotFound) {
		booking, err = ws.API.GetBooking(c.Request.Context(), id)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

func (ctrl *BookingController) Create(c *gin.Context) {
	ctrl.submit(c, 0)
}

func (ctrl *BookingController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctrl.submit(c, id)
}

func (ctrl *BookingController) submit(c *gin.Context, editingID uint) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.BookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid booking data")
		return
	}

	result, err := ws.Bookings.Submit(c.Request.Context(), req, editingID)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeAvailabilityConflict) {
			response.Conflict(c, errors.GetAppError(err).Message, result)
			return
		}
		response.FromError(c, err)
		return
	}
	if editingID == 0 {
		response.Created(c, result)
		return
	}
	response.Success(c, result)
}

func (ctrl *BookingController) Delete(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ws.Bookings.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// Preview prices the dates of an open booking form.
func (ctrl *BookingController) Preview(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid preview request")
		return
	}
	preview, err := ws.Preview.Preview(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, preview)
}

// Search ranks cached bookings against ?q.
func (ctrl *BookingController) Search(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Search query is required")
		return
	}
	bookings, err := ws.Store.Bookings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.SearchBookings(bookings, query, queryInt(c, "limit", 20)))
}

// Export streams the cached bookings as an xlsx workbook.
func (ctrl *BookingController) Export(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	villas, err := ws.Store.Villas(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}
	bookings, err := ws.Store.Bookings(ctx)
	if err != nil {
		response.FromError(c, err)
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", models.Today(ctrl.loc))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := services.ExportBookings(c.Writer, villas, bookings); err != nil {
		ctrl.logger.Error("export bookings: %v", err)
	}
}
