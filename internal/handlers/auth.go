package handlers

import "net/http"

// NewAuthHandler returns the handler echoing the authenticated user.
// Clients use it to check stored credentials.
// @Summary Check credentials
// @Description Returns the user resolved from the Basic credentials
// @Tags users
// @Produce json
// @Success 200 {object} models.User "Authenticated user"
// @Failure 401 {object} models.AuthErrorResponse "Invalid username or password"
// @Router /auth [get]
// @Security BasicAuth
func NewAuthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
