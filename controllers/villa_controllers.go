package controllers

import (
	"github.com/gin-gonic/gin"

	"villadash/dto"
	"villadash/errors"
	"villadash/response"
	"villadash/services"
	"villadash/validator"
)

type VillaController struct{}

func NewVillaController() *VillaController {
	return &VillaController{}
}

// List returns the cached villa list; ?status filters it.
func (ctrl *VillaController) List(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	villas, err := ws.Store.Villas(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		filtered := villas[:0:0]
		for _, v := range villas {
			if v.Status == status {
				filtered = append(filtered, v)
			}
		}
		villas = filtered
	}
	response.Success(c, services.SortVillas(villas))
}

func (ctrl *VillaController) Get(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	villa, err := ws.Store.VillaByID(c.Request.Context(), id)
	if errors.Is(err, errors.ErrVillaNotFound) {
		// not cached yet, ask the API
		villa, err = ws.API.GetVilla(c.Request.Context(), id)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, villa)
}

// Bookings lists the cached bookings of one villa.
func (ctrl *VillaController) Bookings(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	bookings, err := ws.Store.BookingsForVilla(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

func (ctrl *VillaController) Create(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.VillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid villa data")
		return
	}
	villa, err := ws.Villas.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, villa)
}

func (ctrl *VillaController) Update(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.VillaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid villa data")
		return
	}
	villa, err := ws.Villas.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, villa)
}

func (ctrl *VillaController) Delete(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ws.Villas.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// UploadImage stores the multipart "file" and sets it as the villa image.
func (ctrl *VillaController) UploadImage(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open uploaded file")
		return
	}
	defer src.Close()

	villa, err := ws.Media.UploadVillaImage(c.Request.Context(), id, src)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, villa)
}

// Availability asks the API whether [check_in, check_out) is free.
func (ctrl *VillaController) Availability(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	checkIn, checkOut, err := validator.ValidateDateRange(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	res, err := ws.API.CheckAvailability(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, res)
}

// Estimate prices a stay locally for a villa being edited, before it is saved.
func (ctrl *VillaController) Estimate(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid estimate request")
		return
	}
	if err := validator.ValidateVilla(req.Villa); err != nil {
		response.FromError(c, err)
		return
	}
	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		response.FromError(c, err)
		return
	}
	specialDays, err := ws.Store.SpecialDays(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, services.Estimate(req.Villa.ToModel(0), checkIn, checkOut, specialDays))
}
