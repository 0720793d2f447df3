package http

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type envelope map[string]any

func respond(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// fail reports a client error (4xx).
func fail(w http.ResponseWriter, status int, message string) {
	respond(w, status, envelope{"status": statusFail, "message": message})
}

// internalError reports a server fault with a generic message; the
// underlying error is logged by the caller, never sent to the client.
func internalError(w http.ResponseWriter, message string) {
	respond(w, http.StatusInternalServerError, envelope{"status": statusError, "message": message})
}

func methodNotAllowed(w http.ResponseWriter) {
	fail(w, http.StatusMethodNotAllowed, "Method not allowed")
}
