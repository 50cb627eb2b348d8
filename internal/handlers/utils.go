package handlers

import "net/http"

// authTokenFromRequest returns the auth_token cookie value, or "" if the
// request carries none.
func authTokenFromRequest(r *http.Request) string {
	c, err := r.Cookie("auth_token")
	if err != nil {
		return ""
	}
	return c.Value
}
