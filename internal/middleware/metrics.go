package middleware

import (
	"crypto/subtle"
	"net/http"
)

// MetricsAuthMiddleware gates the Prometheus scrape endpoint behind HTTP
// basic auth. Scoring reports carry vehicle and technician identifiers,
// so even aggregate counters stay off the open network. With no
// credentials configured the gate is open; that mode is for local
// development only.
type MetricsAuthMiddleware struct {
	username []byte
	password []byte
}

// NewMetricsAuthMiddleware creates the auth gate. Empty username and
// password disable authentication.
func NewMetricsAuthMiddleware(username, password string) *MetricsAuthMiddleware {
	return &MetricsAuthMiddleware{
		username: []byte(username),
		password: []byte(password),
	}
}

func (m *MetricsAuthMiddleware) enabled() bool {
	return len(m.username) > 0 || len(m.password) > 0
}

// Handler returns middleware that challenges unauthenticated requests.
func (m *MetricsAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled() {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok || !m.authorize(user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="roadworthy metrics"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authorize compares both credentials unconditionally and in constant
// time, so the response timing does not reveal which one was wrong.
func (m *MetricsAuthMiddleware) authorize(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), m.username) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), m.password) == 1
	return userOK && passOK
}
