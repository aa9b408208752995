package handlers_fiber

import (
	"context"
	"errors"
	"net/http"

	"casa-do-pai/internal/api"
	"casa-do-pai/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrMemberNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "member not found"
	case errors.Is(err, entities.ErrLeaderNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "leader not found"
	case errors.Is(err, entities.ErrGroupNotFound):
		status = http.StatusBadRequest
		code = api.NOGROUP
		msg = "group does not exist"
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusBadRequest
		code = api.EMAILEXISTS
		msg = "email already registered"
	case errors.Is(err, entities.ErrEmailNotRegistered):
		status = http.StatusUnauthorized
		code = api.INVALIDCREDENTIALS
		msg = "email not registered"
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.INVALIDCREDENTIALS
		msg = "invalid credentials"
	case errors.Is(err, entities.ErrAlreadyLeader):
		status = http.StatusBadRequest
		code = api.ALREADYLEADER
		msg = "member already leads a group"
	case errors.Is(err, entities.ErrNoGroupAssigned):
		status = http.StatusBadRequest
		code = api.NOGROUP
		msg = "member has no group assigned"
	case errors.Is(err, entities.ErrMailDelivery):
		status = http.StatusInternalServerError
		code = api.MAILFAILED
		msg = "could not send recovery email"
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		code = api.UNAVAILABLE
		msg = "temporarily unavailable, retry later"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func memberID(c *fiber.Ctx, param string) (int64, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, entities.ErrInvalidArgument
	}
	return int64(id), nil
}
