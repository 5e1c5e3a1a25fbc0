package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxRequestBodyBytes = 1 << 20

func (h *Handler) listSpecials(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.requireScope(w, r, h.readScope, "*Handler.listSpecials") {
		return
	}

	specials, err := h.services.SpecialsService.ListSpecials(r.Context())
	if err != nil {
		respondWithError(w, log, "*Handler.listSpecials", err, "error listing pizza specials")
		return
	}
	if specials == nil {
		specials = []models.PizzaSpecial{}
	}

	utils.WriteJSON(w, specials, http.StatusOK)
}

func (h *Handler) getSpecial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.requireScope(w, r, h.readScope, "*Handler.getSpecial") {
		return
	}

	id, err := specialIDFromPath(r)
	if err != nil {
		respondWithError(w, log, "*Handler.getSpecial", err, "bad pizza special id")
		return
	}

	special, err := h.services.SpecialsService.GetSpecial(r.Context(), id)
	if err != nil {
		respondWithError(w, log, "*Handler.getSpecial", err, "error getting pizza special")
		return
	}

	utils.WriteJSON(w, special, http.StatusOK)
}

func (h *Handler) createSpecial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.requireScope(w, r, h.writeScope, "*Handler.createSpecial") {
		return
	}

	var req models.CreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondWithError(w, log, "*Handler.createSpecial", err, "invalid create request")
		return
	}

	special, err := h.services.SpecialsService.CreateSpecial(r.Context(), req)
	if err != nil {
		respondWithError(w, log, "*Handler.createSpecial", err, "error creating pizza special")
		return
	}

	w.Header().Set("Location", "/"+special.ID.String())
	utils.WriteJSON(w, h.services.Mapper.ToResponse(special), http.StatusCreated)
}

func (h *Handler) updateSpecial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.requireScope(w, r, h.writeScope, "*Handler.updateSpecial") {
		return
	}

	id, err := specialIDFromPath(r)
	if err != nil {
		respondWithError(w, log, "*Handler.updateSpecial", err, "bad pizza special id")
		return
	}

	var req models.UpdateRequest
	if err = decodeBody(w, r, &req); err != nil {
		respondWithError(w, log, "*Handler.updateSpecial", err, "invalid update request")
		return
	}

	special, err := h.services.SpecialsService.UpdateSpecial(r.Context(), id, req)
	if err != nil {
		respondWithError(w, log, "*Handler.updateSpecial", err, "error updating pizza special")
		return
	}

	utils.WriteJSON(w, special, http.StatusOK)
}

func (h *Handler) deleteSpecial(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.requireScopeOrForbid(w, r, h.writeScope, "*Handler.deleteSpecial") {
		return
	}

	id, err := specialIDFromPath(r)
	if err != nil {
		respondWithError(w, log, "*Handler.deleteSpecial", err, "bad pizza special id")
		return
	}

	if err = h.services.SpecialsService.DeleteSpecial(r.Context(), id); err != nil {
		respondWithError(w, log, "*Handler.deleteSpecial", err, "error deleting pizza special")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireScope answers 401 and returns false unless the caller holds
// scope. It runs before anything else in a handler touches the request.
func (h *Handler) requireScope(w http.ResponseWriter, r *http.Request, scope, funcName string) bool {
	return h.authorize(w, r, scope, funcName, false)
}

// requireScopeOrForbid is requireScope for operations that answer 403 to an
// authenticated caller whose token lacks scope.
func (h *Handler) requireScopeOrForbid(w http.ResponseWriter, r *http.Request, scope, funcName string) bool {
	return h.authorize(w, r, scope, funcName, true)
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, scope, funcName string, forbid bool) bool {
	err := h.services.AuthService.Authorize(r.Context(), scope)
	if err == nil {
		return true
	}

	if errors.Is(err, service.ErrForbidden) && !forbid {
		w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer realm="pizza-specials", error="insufficient_scope", scope=%q`, scope))
		err = fmt.Errorf("%w: %s", ErrMissingScope, scope)
	}

	respondWithError(w, logger.FromRequest(r), funcName, err, "access denied")
	return false
}

// specialIDFromPath parses the {id} URL parameter. A malformed id cannot name
// any special, so it is reported as not found.
func specialIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed id %q", store.ErrSpecialNotFound, raw)
	}
	return id, nil
}

// decodeBody decodes exactly one JSON value from the request body into dst.
// Bodies over maxRequestBodyBytes yield [ErrRequestTooLarge]; malformed
// JSON or anything after the value yields [ErrInvalidJSON].
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}
		return decodeError(err)
	}

	return nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
