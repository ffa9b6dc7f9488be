package httpadapter

import (
	"crypto/subtle"
	"net/http"

	"offerchain/internal/core/port"
)

// StaticCredentials verifies basic-auth against a single fixed
// username/password pair.
type StaticCredentials struct {
	username []byte
	password []byte
}

var _ port.CredentialVerifier = StaticCredentials{}

func NewStaticCredentials(username, password string) StaticCredentials {
	return StaticCredentials{username: []byte(username), password: []byte(password)}
}

// Verify compares both fields in constant time regardless of where the
// first mismatch occurs.
func (c StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), c.username)
	passOK := subtle.ConstantTimeCompare([]byte(password), c.password)
	return userOK&passOK == 1
}

// requireAdmin gates a route subtree behind HTTP basic auth.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			h.fail(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		username, password, ok := r.BasicAuth()
		if !ok {
			h.fail(w, http.StatusUnauthorized, "Invalid authorization format")
			return
		}
		if !h.verifier.Verify(username, password) {
			h.fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}
