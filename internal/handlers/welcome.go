package handlers

import "net/http"

// NewWelcomeHandler returns the API entry point handler.
// @Summary API entry point
// @Description Returns a welcome message as a JSON string
// @Tags meta
// @Produce json
// @Success 200 {string} string "Welcome message"
// @Router / [get]
func NewWelcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, welcomeMessage)
	}
}
