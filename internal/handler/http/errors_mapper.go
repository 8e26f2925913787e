package http

import (
	"errors"
	"net/http"

	"github.com/pocketdiary/diary-server/internal/adapter"
	"github.com/pocketdiary/diary-server/internal/service"
	"github.com/pocketdiary/diary-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrFieldTooLong:        http.StatusBadRequest,
	service.ErrInvalidDate:         http.StatusBadRequest,
	service.ErrDateOutOfRange:      http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrEmailAlreadyRegistered: http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,

	adapter.ErrUpstream: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage is the client-facing text for an error. Expected failures keep
// their sentinel text; anything unexpected collapses to the generic status
// text so internals never leak to the client.
func errorMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}
