package handlers

import "net/http"

func Router(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stores/{store_id}/menu/{$}", h.Menu.ListMenu)
	mux.HandleFunc("PATCH /inventory/{menu_item_id}/{$}", h.Inventory.SetQuantity)
	mux.HandleFunc("POST /orders/{$}", h.Order.PlaceOrder)

	// administrative catalog surface
	mux.HandleFunc("POST /stores/{$}", h.Store.CreateStore)
	mux.HandleFunc("DELETE /stores/{store_id}/{$}", h.Store.DeleteStore)
	mux.HandleFunc("POST /stores/{store_id}/menu/{$}", h.Menu.CreateMenuItem)
	return mux
}
