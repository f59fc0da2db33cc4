package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/icrc7-dapp/internal/app"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/utils"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// delegate is the identity provider endpoint: it exchanges a signed
// challenge for a bearer delegation.
func (h *Handler) delegate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DelegationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	delegation, err := h.services.IdentityService.Delegate(r.Context(), req)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("delegation refused")
		return
	}

	utils.WriteJSON(w, delegation, http.StatusOK)
}
