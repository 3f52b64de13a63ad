package handlers

import (
	"encoding/json"
	"net/http"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/service"
)

type StoreHandler struct {
	service service.CatalogServiceInterface
	lg      *logger.Logger
}

func NewStoreHandler(s service.CatalogServiceInterface, lg *logger.Logger) *StoreHandler {
	return &StoreHandler{service: s, lg: lg}
}

func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.service.CreateStore(r.Context(), req)
	if err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			h.lg.Error("create_store_failed", err, nil)
		}
		writeError(w, code, msg)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *StoreHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathID(r, "store_id")
	if !ok {
		writeError(w, http.StatusNotFound, "store not found")
		return
	}

	if err := h.service.DeleteStore(r.Context(), storeID); err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			h.lg.Error("delete_store_failed", err, map[string]any{"store_id": storeID})
		}
		writeError(w, code, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
