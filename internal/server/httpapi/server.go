// Package httpapi serves the server-rendered HTML surface: the ranked front
// page, signup/login/logout, link submission, and vote casting. It owns
// cookie transport for the opaque session token; everything stateful is
// delegated to the services.
package httpapi

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/zsaab/linkboard/internal/logging"
	"github.com/zsaab/linkboard/internal/server/config"
	"github.com/zsaab/linkboard/internal/server/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const sessionCookieName = "session"

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	sessions *services.SessionService
	contents *services.ContentService
	votes    *services.VoteService
	ranking  *services.RankingService
	pageSize int
	validity time.Duration
	tmpl     *template.Template
}

func NewHTTPServer(
	cfg *config.Config,
	l logging.Logger,
	us *services.UserService,
	ss *services.SessionService,
	cs *services.ContentService,
	vs *services.VoteService,
	rs *services.RankingService,
) *HTTPServer {
	return &HTTPServer{
		address:  cfg.EndpointAddr,
		logger:   l.With("module", "http_server"),
		users:    us,
		sessions: ss,
		contents: cs,
		votes:    vs,
		ranking:  rs,
		pageSize: cfg.FrontPageSize,
		validity: cfg.SessionValidityDuration,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Handler builds the route table. Every route goes through identity
// resolution first so handlers receive the caller explicitly.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.withIdentity(s.home))
	mux.HandleFunc("GET /login", s.withIdentity(s.loginPage))
	mux.HandleFunc("POST /login", s.withIdentity(s.login))
	mux.HandleFunc("GET /signup", s.withIdentity(s.signupPage))
	mux.HandleFunc("POST /signup", s.withIdentity(s.signup))
	mux.HandleFunc("GET /submit", s.withIdentity(s.submitPage))
	mux.HandleFunc("POST /submit", s.withIdentity(s.submit))
	mux.HandleFunc("POST /vote", s.withIdentity(s.vote))
	mux.HandleFunc("GET /logout", s.withIdentity(s.logout))

	return s.withRequestLog(mux)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
