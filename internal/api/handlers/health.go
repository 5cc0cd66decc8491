package handlers

import (
	"encoding/json"
	"net/http"
)

// Health reports basic liveness. It bypasses the response envelope so load
// balancers get a minimal payload.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
