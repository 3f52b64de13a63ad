package handlers

import (
	"encoding/json"
	"net/http"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/service"
)

type InventoryHandler struct {
	service service.InventoryServiceInterface
	lg      *logger.Logger
}

func NewInventoryHandler(s service.InventoryServiceInterface, lg *logger.Logger) *InventoryHandler {
	return &InventoryHandler{service: s, lg: lg}
}

func (h *InventoryHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	menuItemID, ok := pathID(r, "menu_item_id")
	if !ok {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	var req domain.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.service.SetQuantity(r.Context(), menuItemID, req)
	if err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			h.lg.Error("set_quantity_failed", err, map[string]any{"menu_item_id": menuItemID})
		}
		writeError(w, code, msg)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
