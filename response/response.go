package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "villadash/errors"
)

// Response is the envelope of every JSON reply
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Redirect   string      `json:"redirect,omitempty"`
}

// Pagination describes a page of a list
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success replies 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// Created replies 201 with data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// SuccessWithPagination replies 200 with a page of data
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error replies 400 with a message
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: code,
		Mess: message,
	})
}

// ServerError replies 500
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}

// Unauthorized replies 401
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:     0,
		Mess:     "Not logged in",
		Redirect: "/login",
	})
}

// SessionExpired replies 401 and tells the dashboard to show the login view
func SessionExpired(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:     0,
		Mess:     message,
		Redirect: "/login",
	})
}

// NotFound replies 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// ValidationError replies 422 with the inline error
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest replies 400
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict replies 409
func Conflict(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
		Data: data,
	})
}

// BadGateway replies 502 for network failures towards the villa API
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError picks the reply for an error returned by a service.
func FromError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case apperrors.ErrCodeSessionExpired:
			SessionExpired(c, appErr.Message)
		case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
			Unauthorized(c)
		case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidFormat,
			apperrors.ErrCodeInvalidPhone, apperrors.ErrCodeInvalidDateRange, apperrors.ErrCodeInvalidAmount:
			ValidationError(c, appErr.Message)
		case apperrors.ErrCodeAvailabilityConflict:
			Conflict(c, appErr.Message, nil)
		case apperrors.ErrCodeNotFound:
			c.JSON(http.StatusNotFound, Response{Code: 0, Mess: appErr.Message})
		case apperrors.ErrCodeNetwork, apperrors.ErrCodeUnavailable:
			BadGateway(c, appErr.Message)
		case apperrors.ErrCodeAPI:
			status := http.StatusBadGateway
			if apiErr := apperrors.GetAPIError(err); apiErr != nil && apiErr.Status >= 400 && apiErr.Status < 500 {
				status = apiErr.Status
			}
			c.JSON(status, Response{Code: 0, Mess: appErr.Message})
		case apperrors.ErrCodeInvalidOperation:
			BadRequest(c, appErr.Message)
		default:
			ServerError(c)
		}
		return
	}
	ServerError(c)
}
