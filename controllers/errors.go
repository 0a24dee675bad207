package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-ordering/middlewares"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

var errInternal = errors.New("internal server error")

// respondServiceError is the single place where service errors become HTTP answers.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondValidation(c, http.StatusBadRequest, "please correct the errors below", verr.Fields)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrUnauthorized):
		middlewares.AbortUnauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		_ = c.Error(err)
		utils.ErrorLogger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
		utils.RespondError(c, http.StatusInternalServerError, errInternal)
	}
}

// bindError turns a binding failure into the same shape as a validation error.
func bindError(c *gin.Context, err error) {
	respondServiceError(c, services.ValidationErrorFrom(err))
}

// idParam parses a numeric path parameter. Anything else is treated as a missing record.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusNotFound, services.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}
