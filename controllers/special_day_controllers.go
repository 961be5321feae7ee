package controllers

import (
	"github.com/gin-gonic/gin"

	"villadash/dto"
	"villadash/response"
)

func GetSpecialDays(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	days, err := ws.Store.SpecialDays(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, days)
}

func CreateSpecialDay(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var req dto.SpecialDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid special day")
		return
	}
	day, err := ws.Villas.CreateSpecialDay(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, day)
}

func DeleteSpecialDay(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ws.Villas.DeleteSpecialDay(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
