package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"widia-api/api/trace"
	"widia-api/blog"
	"widia-api/dto"
	"widia-api/logger"
	"widia-api/services"
)

// RootHandler godoc
// @Summary      API root
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       / [get]
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Hello World"})
	}
}

// writeError maps service and scanner errors to a status code and JSON body.
func writeError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		details := make([]dto.FieldErrorDTO, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			details = append(details, dto.FieldErrorDTO{Field: f.Field, Reason: f.Reason})
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseDTO{
			Error:   services.ErrValidation.Error(),
			Details: details,
		})
	case errors.Is(err, blog.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid slug"})
	case errors.Is(err, blog.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "post not found"})
	default:
		_ = c.Error(err)
		logger.ErrorWithFields("request failed", logger.Fields{
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal server error"})
	}
}

// writeBindError answers a body that could not be decoded. Type mismatches on
// a known field are reported like validation errors; anything else is a 400.
func writeBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseDTO{
			Error: services.ErrValidation.Error(),
			Details: []dto.FieldErrorDTO{{
				Field:  typeErr.Field,
				Reason: "expected " + typeErr.Type.String(),
			}},
		})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid request body"})
}
