package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vai-sys/DigitalDinner/pkg/resp"
	"github.com/vai-sys/DigitalDinner/services"
)

// fail maps service errors onto the HTTP statuses of the error envelope:
// 400 for validation/state errors, 401 for credentials, 404 for missing
// entities, 500 for everything else.
func fail(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrDuplicateUser),
		errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
