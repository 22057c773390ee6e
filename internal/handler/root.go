package handler

import "net/http"

// HandleRoot is the liveness endpoint. Plain body, no envelope — it is
// the one response a load balancer probes, and it predates the API
// surface.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Election Campaign Manager API",
		"status":  "running",
	})
}
