package http

import (
	"context"
	"log"
	"net/http"

	"kassa/internal/shared/auth"
)

// DataResetter wipes all persisted data across every user.
type DataResetter interface {
	ResetAll(ctx context.Context) error
}

// MaintenanceHandler exposes the operator-only reset endpoint. The caller
// must present the plain reset key in X-Reset-Key; it is checked against the
// configured bcrypt hash. With no hash configured the endpoint is disabled.
type MaintenanceHandler struct {
	resetter     DataResetter
	resetKeyHash string
}

func NewMaintenanceHandler(resetter DataResetter, resetKeyHash string) *MaintenanceHandler {
	return &MaintenanceHandler{resetter: resetter, resetKeyHash: resetKeyHash}
}

func (h *MaintenanceHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.resetKeyHash == "" {
		http.Error(w, "Reset is disabled", http.StatusForbidden)
		return
	}

	key := r.Header.Get("X-Reset-Key")
	if key == "" {
		http.Error(w, "Reset key required", http.StatusUnauthorized)
		return
	}
	if err := auth.VerifyResetKey(h.resetKeyHash, key); err != nil {
		http.Error(w, "Invalid reset key", http.StatusUnauthorized)
		return
	}

	if err := h.resetter.ResetAll(r.Context()); err != nil {
		log.Printf("Error resetting data: %v", err)
		http.Error(w, "Failed to reset data", http.StatusInternalServerError)
		return
	}

	log.Printf("All data reset by operator request")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset complete"})
}
