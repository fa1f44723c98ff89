package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flasheng-api/store"
	"github.com/andrewpaige1/flasheng-api/utils"
)

// GET /api/settings
func (h *DBHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "GetSettings", err)
		return
	}

	settings, err := h.Store.Settings.GetOrCreate(r.Context(), actor.UserID)
	if err != nil {
		h.fail(w, r, "GetSettings", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, settings)
}

// PUT /api/settings
func (h *DBHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	actor, _, err := h.actor(r)
	if err != nil {
		h.fail(w, r, "UpdateSettings", err)
		return
	}

	var patch store.SettingsPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		h.fail(w, r, "UpdateSettings", err)
		return
	}

	settings, err := h.Store.Settings.Update(r.Context(), actor.UserID, patch)
	if err != nil {
		h.fail(w, r, "UpdateSettings", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}
