package handlers

import (
	"encoding/json"
	"net/http"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/service"
)

type MenuHandler struct {
	service service.CatalogServiceInterface
	lg      *logger.Logger
}

func NewMenuHandler(s service.CatalogServiceInterface, lg *logger.Logger) *MenuHandler {
	return &MenuHandler{service: s, lg: lg}
}

func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathID(r, "store_id")
	if !ok {
		writeError(w, http.StatusNotFound, "store not found")
		return
	}

	views, err := h.service.ListMenu(r.Context(), storeID)
	if err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			h.lg.Error("list_menu_failed", err, map[string]any{"store_id": storeID})
		}
		writeError(w, code, msg)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathID(r, "store_id")
	if !ok {
		writeError(w, http.StatusNotFound, "store not found")
		return
	}
	var req domain.CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.service.CreateMenuItem(r.Context(), storeID, req)
	if err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			h.lg.Error("create_menu_item_failed", err, map[string]any{"store_id": storeID})
		}
		writeError(w, code, msg)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}
