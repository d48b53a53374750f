package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zsaab/linkboard/internal/server/services"
)

// identityHandler is a handler that receives the resolved caller explicitly
// instead of digging it out of ambient request state.
type identityHandler func(w http.ResponseWriter, r *http.Request, ident services.Identity)

// withIdentity resolves the session cookie before the handler runs. When the
// resolver reports the token stale, the client's cookie is cleared right
// here, so forged or revoked tokens heal themselves on the next request.
func (s *HTTPServer) withIdentity(next identityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(sessionCookieName); err == nil {
			token = c.Value
		}

		res := s.sessions.Resolve(r.Context(), token)
		if res.StaleToken {
			clearSessionCookie(w)
		}

		next(w, r, res.Identity)
	}
}

// withRequestLog tags every request with an id and logs method, path, and
// duration.
func (s *HTTPServer) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := s.logger.With("request_id", uuid.NewString())

		log.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
		log.Info(r.Context(), "request done", "duration_ms", time.Since(start).Milliseconds())
	})
}

func setSessionCookie(w http.ResponseWriter, token string, validity time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(validity),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
