package handlers

import (
	"strconv"

	"usta_backend/internal/validator"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the binding helpers shared by all handlers.
type BaseHandler struct{}

// BindJSON decodes and validates the request body. On failure the error
// response is already written and false is returned.
func (h *BaseHandler) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid request body"))
		return false
	}
	if err := validator.Struct(req); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(validator.Details(err)))
		return false
	}
	return true
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

// BindQuery decodes and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid query parameters"))
		return false
	}
	if err := validator.Struct(req); err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(validator.Details(err)))
		return false
	}
	return true
}
