package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// userHeader carries the caller's identity on checkout routes.
const userHeader = "X-User-Id"

// requestUserID extracts the caller identity from the X-User-Id header.
// A missing or blank header fails the request with 400.
func requestUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(userHeader))
	if id == "" {
		writeError(w, http.StatusBadRequest, "user ID is required in X-User-Id header")
		return "", false
	}
	return id, true
}

// requireAdmin gates administrative endpoints behind the configured admin
// identity. The comparison is constant-time to avoid leaking prefix matches
// through response timing.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(userHeader))
		if id == "" || subtle.ConstantTimeCompare([]byte(id), h.adminID) != 1 {
			writeError(w, http.StatusForbidden, "access denied, admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
