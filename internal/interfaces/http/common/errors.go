package common

import (
	"errors"
	"net/http"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

// StatusForError maps the domain error taxonomy onto HTTP status codes.
// Store failures map to 502 so callers can tell a retryable backend outage
// apart from their own bad request.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, admindomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, admindomain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, admindomain.ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, admindomain.ErrInvalidField):
		return http.StatusBadRequest
	}

	var validationErr *admindomain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var storeErr *admindomain.StoreError
	if errors.As(err, &storeErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
