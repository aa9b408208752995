package handlers_fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"casa-do-pai/internal/api"
	"casa-do-pai/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorEmailExists(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrEmailExists)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.EMAILEXISTS, body.Error.Code)
	require.Equal(t, "email already registered", body.Error.Message)
}

func TestWriteErrorMappings(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorResponseErrorCode
		message string
	}{
		{
			name:    "member_not_found",
			err:     entities.ErrMemberNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "member not found",
		},
		{
			name:    "leader_not_found",
			err:     entities.ErrLeaderNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "leader not found",
		},
		{
			name:    "invalid_credentials",
			err:     entities.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			code:    api.INVALIDCREDENTIALS,
			message: "invalid credentials",
		},
		{
			name:    "email_not_registered",
			err:     entities.ErrEmailNotRegistered,
			status:  http.StatusUnauthorized,
			code:    api.INVALIDCREDENTIALS,
			message: "email not registered",
		},
		{
			name:    "already_leader",
			err:     entities.ErrAlreadyLeader,
			status:  http.StatusBadRequest,
			code:    api.ALREADYLEADER,
			message: "member already leads a group",
		},
		{
			name:    "no_group",
			err:     entities.ErrNoGroupAssigned,
			status:  http.StatusBadRequest,
			code:    api.NOGROUP,
			message: "member has no group assigned",
		},
		{
			name:    "group_not_found",
			err:     entities.ErrGroupNotFound,
			status:  http.StatusBadRequest,
			code:    api.NOGROUP,
			message: "group does not exist",
		},
		{
			name:    "mail_failed",
			err:     entities.ErrMailDelivery,
			status:  http.StatusInternalServerError,
			code:    api.MAILFAILED,
			message: "could not send recovery email",
		},
		{
			name:    "deadline",
			err:     context.DeadlineExceeded,
			status:  http.StatusServiceUnavailable,
			code:    api.UNAVAILABLE,
			message: "temporarily unavailable, retry later",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestWriteErrorDefaultDoesNotLeak(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, errors.New("pq: connection refused host=10.0.0.3"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INTERNAL, body.Error.Code)
	require.Equal(t, "internal error", body.Error.Message)
}
