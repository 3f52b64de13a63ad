package handlers

import (
	"encoding/json"
	"net/http"

	"foodcourt-system/internal/domain"
	"foodcourt-system/internal/logger"
	"foodcourt-system/internal/service"
)

type OrderHandler struct {
	service service.OrderServiceInterface
	lg      *logger.Logger
}

func NewOrderHandler(s service.OrderServiceInterface, lg *logger.Logger) *OrderHandler {
	return &OrderHandler{service: s, lg: lg}
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.service.PlaceOrder(r.Context(), req); err != nil {
		code, msg := statusFor(err)
		if code == http.StatusInternalServerError {
			h.lg.Error("place_order_failed", err, map[string]any{"store_id": req.StoreID})
		}
		writeError(w, code, msg)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Order placed successfully"})
}
