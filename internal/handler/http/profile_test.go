// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/pocketdiary/diary-server/internal/service"
	"github.com/pocketdiary/diary-server/internal/store"
	"github.com/pocketdiary/diary-server/models"
	"github.com/stretchr/testify/assert"
)

func TestUpdateName_Success(t *testing.T) {
	profile := &mockProfileService{
		updateNameFn: func(_ context.Context, req models.UpdateNameRequest) error {
			assert.Equal(t, testCredentials, req.Credentials)
			assert.Equal(t, "Alice Cooper", req.Name)
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	body := jsonBody(t, models.UpdateNameRequest{Credentials: testCredentials, Name: "Alice Cooper"})
	rec := doJSON(t, router, http.MethodPost, "/api/user/name", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeMessage(t, rec).Message)
}

func TestUpdateName_UserNotFound(t *testing.T) {
	profile := &mockProfileService{
		updateNameFn: func(_ context.Context, _ models.UpdateNameRequest) error {
			return store.ErrNoUserWasFound
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	rec := doJSON(t, router, http.MethodPost, "/api/user/name", "{}")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdatePassword_Success(t *testing.T) {
	profile := &mockProfileService{
		updatePasswordFn: func(_ context.Context, req models.UpdatePasswordRequest) error {
			assert.Equal(t, "brand-new-pass", req.NewPassword)
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	body := jsonBody(t, models.UpdatePasswordRequest{Credentials: testCredentials, NewPassword: "brand-new-pass"})
	rec := doJSON(t, router, http.MethodPost, "/api/user/password", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdatePassword_ValidationError(t *testing.T) {
	profile := &mockProfileService{
		updatePasswordFn: func(_ context.Context, _ models.UpdatePasswordRequest) error {
			return service.ErrInvalidDataProvided
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	rec := doJSON(t, router, http.MethodPost, "/api/user/password", "{}")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTheme_Success(t *testing.T) {
	profile := &mockProfileService{
		updateThemeFn: func(_ context.Context, req models.UpdateThemeRequest) error {
			assert.NotNil(t, req.Theme)
			return nil
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	body := jsonBody(t, models.UpdateThemeRequest{Credentials: testCredentials, Theme: theme(3)})
	rec := doJSON(t, router, http.MethodPost, "/api/user/theme", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteAccount_Found(t *testing.T) {
	profile := &mockProfileService{
		deleteAccountFn: func(_ context.Context, req models.Credentials) (bool, error) {
			assert.Equal(t, testCredentials, req)
			return true, nil
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	rec := doJSON(t, router, http.MethodPost, "/api/user/delete", jsonBody(t, testCredentials))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeMessage(t, rec).Message)
}

func TestDeleteAccount_NotFoundStill200(t *testing.T) {
	profile := &mockProfileService{
		deleteAccountFn: func(_ context.Context, _ models.Credentials) (bool, error) {
			return false, nil
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	rec := doJSON(t, router, http.MethodPost, "/api/user/delete", jsonBody(t, testCredentials))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no user found", decodeMessage(t, rec).Message)
}

func TestDeleteAccount_ValidationError(t *testing.T) {
	profile := &mockProfileService{
		deleteAccountFn: func(_ context.Context, _ models.Credentials) (bool, error) {
			return false, service.ErrInvalidDataProvided
		},
	}
	router := newTestRouter(t, &service.Services{ProfileService: profile})

	rec := doJSON(t, router, http.MethodPost, "/api/user/delete", "{}")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
