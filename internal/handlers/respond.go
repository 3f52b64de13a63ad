package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"foodcourt-system/internal/domain"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// statusFor maps a domain error onto its HTTP status. Anything outside the
// taxonomy is a storage/transaction failure and surfaces as a generic 500;
// the repository has already rolled back by then.
func statusFor(err error) (int, string) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Error()
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Error()
	}
	var inactive *domain.InactiveItemError
	if errors.As(err, &inactive) {
		return http.StatusBadRequest, inactive.Error()
	}
	var stock *domain.InsufficientStockError
	if errors.As(err, &stock) {
		return http.StatusBadRequest, stock.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// pathID parses an integer path segment (needs Go 1.22+ pattern routes).
func pathID(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(r.PathValue(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
