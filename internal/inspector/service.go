package inspector

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/wirekit/internal/config"
	"github.com/danmuck/wirekit/internal/datapath"
	"github.com/danmuck/wirekit/internal/observability"
)

const version = "0.0.1"

// Service is the inspection daemon: one router, one optional data dir.
type Service struct {
	cfg     config.InspectorConfig
	router  *gin.Engine
	data    datapath.Dir
	hasData bool
	started time.Time
}

// NewService builds the daemon router with the standard middleware
// stack and registers all routes.
func NewService(cfg config.InspectorConfig) *Service {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.RequestID())
	r.Use(observability.RequestLogger(log.Logger))
	r.Use(observability.RequestMetricsMiddleware(cfg.Name))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	s := &Service{
		cfg:     cfg,
		router:  r,
		started: time.Now(),
	}
	if cfg.DataDir != "" {
		s.data = datapath.New(cfg.DataDir)
		s.hasData = true
	}
	s.registerRoutes()
	return s
}

// Router exposes the gin engine for serving and tests.
func (s *Service) Router() *gin.Engine {
	return s.router
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()
	log.Info().Str("addr", s.cfg.Addr).Str("node", s.cfg.Name).Msg("inspector listening")

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"http://localhost:3000"}
	}
	return out
}
