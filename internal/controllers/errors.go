package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter. On failure it writes a 400 response
// and returns false.
func parseID(ctx *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse(fmt.Sprintf("Invalid %s ID format", entity)))
		return 0, false
	}
	return uint(id), true
}

// respondLookupError answers a failed read or delete of a single resource
func respondLookupError(ctx *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, services.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(notFoundMessage))
		return
	}
	log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalError))
}

// respondWriteError answers a failed write with an itemized error list
func respondWriteError(ctx *gin.Context, err error) {
	var validationErr *models.ValidationError
	var referenceErr *services.ReferenceError

	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(validationErr.Errors...))
	case errors.As(err, &referenceErr):
		ctx.JSON(http.StatusNotFound, models.NewErrorsResponse(referenceErr.Missing...))
	case errors.Is(err, services.ErrIntegrity):
		log.WithError(err).Warn("Write rejected by database constraint")
		ctx.JSON(http.StatusConflict, models.NewErrorsResponse(models.MsgWriteFailed))
	default:
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorsResponse(models.MsgInternalError))
	}
}

// bindingErrorMessage turns a JSON decoding failure into a client message
func bindingErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		switch typeErr.Type.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fmt.Sprintf("%s must be a positive integer", typeErr.Field)
		default:
			return fmt.Sprintf("%s must be an integer", typeErr.Field)
		}
	}
	return models.MsgInvalidJSON
}
