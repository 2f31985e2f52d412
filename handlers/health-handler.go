package handlers

import "net/http"

// Health reports liveness; it carries no auth and touches no store.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activeStatus": "Server is running",
		"error":        false,
	})
}
