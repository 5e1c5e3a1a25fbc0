package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrRequestTooLarge:            http.StatusRequestEntityTooLarge,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMissingScope:               http.StatusUnauthorized,

	service.ErrValidationFailed:        http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,

	validators.ErrEmptyName:           http.StatusBadRequest,
	validators.ErrBasePriceOutOfRange: http.StatusBadRequest,

	store.ErrSpecialNotFound:      http.StatusNotFound,
	store.ErrSpecialAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondWithError logs err and answers with the status it maps to. Server
// side failures are reported with the generic status text only.
func respondWithError(w http.ResponseWriter, log *logger.Logger, funcName string, err error, msg string) {
	status := statusFromError(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(msg)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
