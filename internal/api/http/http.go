package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/outingclub/trip-lottery/internal/engine"
	"github.com/outingclub/trip-lottery/internal/ratelimit"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	svc     *engine.Service
	limiter *ratelimit.SignupLimiter
	jwtAuth *jwtauth.JWTAuth
	done    chan struct{}
}

// New creates a new server
func New(c *Config, svc *engine.Service, limiter *ratelimit.SignupLimiter, jwtAuth *jwtauth.JWTAuth) *Server {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	return &Server{
		c:       c,
		svc:     svc,
		limiter: limiter,
		jwtAuth: jwtAuth,
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "trip-lottery listening",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, waiting for in-flight requests until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}

	return false
}
