package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"stockdesk/internal/session"
)

type webContextKey string

const webSessionKey webContextKey = "websession"

// RequireSession gates authenticated pages: requests without a valid
// session cookie are redirected to the login page, everything else gets the
// session added to the request context. The redirect replaces the guarded
// URL in navigation, so the browser's back button does not return to it.
func RequireSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.Get(r)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), webSessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentSession retrieves the session from the request context.
func CurrentSession(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(webSessionKey).(*session.Session)
	return sess
}

// token returns the backend bearer token for the request, or an empty
// string for unauthenticated requests.
func token(ctx context.Context) string {
	if sess := CurrentSession(ctx); sess != nil {
		return sess.Token
	}
	return ""
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and duration.
func LoggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.RequestURI(),
				"status", rec.status,
				"duration", time.Since(start).Round(time.Millisecond))
		})
	}
}
