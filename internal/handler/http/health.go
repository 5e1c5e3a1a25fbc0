package http

import (
	"net/http"

	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
