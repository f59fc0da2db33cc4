package http

import (
	"net/http"

	"github.com/MKhiriev/icrc7-dapp/internal/utils"
)

// status reports replica health and build information. It is always JSON.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Status(r.Context()), http.StatusOK)
}
