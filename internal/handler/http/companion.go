// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sif-keeper/internal/app"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/utils"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// fetch releases the key of the item in the request body.
//
// POST /api/companion/fetch
//
//	200 {"item_key": "...", "reset_minutes": 5}
//	400 malformed body or empty identity
//	403 denied by companion policy
//	504 the client gave up while approval was pending
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var id models.ItemID
	if err := utils.ReadJSON(w, r, &id); err != nil {
		log.Err(err).Str("func", "*Handler.fetch").Msg("failed to decode item id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	grant, err := h.services.CompanionService.Fetch(r.Context(), id)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str("func", "*Handler.fetch").Str("item", id.String()).Int("status", status).Msg("fetch failed")
		return
	}

	if _, err := utils.WriteJSON(w, grant, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.fetch").Msg("failed to write grant")
	}
}
