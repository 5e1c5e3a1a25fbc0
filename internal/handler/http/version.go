package http

import (
	"net/http"

	"github.com/MKhiriev/pizza-specials/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx)

	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(ctx).VersionResponse(version), http.StatusOK)
}
