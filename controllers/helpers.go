package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"villadash/errors"
	"villadash/middleware"
	"villadash/response"
	"villadash/services"
)

// workspace returns the session workspace, replying 401 when it is missing.
func workspace(c *gin.Context) (*services.Workspace, bool) {
	ws := middleware.GetWorkspace(c)
	if ws == nil {
		response.FromError(c, errors.ErrNotLoggedIn)
		return nil, false
	}
	return ws, true
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
