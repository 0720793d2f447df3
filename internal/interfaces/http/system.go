package http

import (
	"fmt"
	"net/http"
)

// HandleRoot serves the welcome payload at "/" and the JSON 404 for
// every path no other route claimed.
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		HandleNotFound(w, r)
		return
	}
	respond(w, http.StatusOK, envelope{
		"status":  statusSuccess,
		"message": "Welcome to the API",
	})
}

func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	fail(w, http.StatusNotFound, fmt.Sprintf("Route %s not found", r.URL.Path))
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
