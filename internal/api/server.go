package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/limbo/mindwell/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	challengesService service.ChallengesServiceI
	completionService service.CompletionServiceI
	progressService   service.ProgressServiceI
	jwtService        JWTServiceI
	pinger            Pinger
	limiter           *RateLimiter
	metrics           *Metrics
	opts              Options
}

type ServicesList struct {
	UserService       service.UserServiceI
	ChallengesService service.ChallengesServiceI
	CompletionService service.CompletionServiceI
	ProgressService   service.ProgressServiceI
	JwtService        JWTServiceI
	// Pinger backs /health, nil reports healthy
	Pinger Pinger
}

type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	MetricsUser    string
	MetricsPass    string
	CORSOrigins    []string
	// TrustedProxies may set X-Forwarded-For for rate limiting
	TrustedProxies []netip.Prefix
}

func New(servicesOptions *ServicesList, opts ...Options) *Server {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		challengesService: servicesOptions.ChallengesService,
		completionService: servicesOptions.CompletionService,
		progressService:   servicesOptions.ProgressService,
		jwtService:        servicesOptions.JwtService,
		pinger:            servicesOptions.Pinger,
		limiter:           NewRateLimiter(o.RateLimitRPS, o.RateLimitBurst, o.TrustedProxies...),
		metrics:           NewMetrics(),
		opts:              o,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.With(s.BasicAuthMiddleware).Handle("/metrics", s.metrics.Handler())
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)
			r.Get("/challenges", s.GetChallenges)
			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges/progress", s.GetProgress)
			r.Get("/challenges/{id}", s.GetChallenge)
			r.Delete("/challenges/{id}", s.DeleteChallenge)
			r.Patch("/challenges/{id}/completed", s.RecordCompletion)
		})
	})
}

// Handler returns the router wrapped with CORS.
func (s *Server) Handler() http.Handler {
	origins := s.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(origins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		gorillaHandlers.ExposedHeaders([]string{"X-Request-ID"}),
	)(s.mx)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	go s.limiter.RunCleanup(ctx, time.Minute)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New("serving error: " + err.Error())
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}
