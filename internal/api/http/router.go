package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"github.com/outingclub/trip-lottery/internal/auth/jwt"
	"github.com/outingclub/trip-lottery/internal/metrics"
	"github.com/outingclub/trip-lottery/internal/middleware"
	"github.com/outingclub/trip-lottery/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler builds the router of the JSON API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", log.RequestIDHeader},
		ExposedHeaders: []string{log.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(log.RequestID)
	r.Use(middleware.ClientIP)
	r.Use(log.Requests(slog.Default()))
	r.Use(chimw.Recoverer)
	r.Use(observe)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(s.c.RequestTimeout))

		r.Post("/participants", s.addParticipant)
		r.Route("/participants/{participantId}", func(r chi.Router) {
			r.Put("/car", s.updateCarStatus)
			r.Put("/partner", s.requestPartner)
			r.Put("/signup-order", s.reorderSignups)
		})

		r.Route("/trips/{tripId}", func(r chi.Router) {
			r.Get("/roster", s.getRoster)
			r.Get("/waitlist", s.getWaitlist)
			r.Post("/signups", s.signup)
		})
		r.Delete("/signups/{signupId}", s.dropSignup)
		r.Get("/lottery/{cycleId}/log", s.getLotteryLog)

		// leader routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.jwtAuth))
			r.Use(leaderOnly)

			r.Post("/trips", s.addTrip)
			r.Put("/trips/{tripId}/capacity", s.setTripCapacity)
			r.Post("/trips/{tripId}/leader-signups", s.addLeaderSignup)
			r.Post("/signups/{signupId}/prioritize", s.prioritizeWaitlist)
			r.Post("/lottery", s.addLotteryCycle)
			r.Post("/lottery/{cycleId}/run", s.runLottery)
		})
	})

	return r
}

// leaderOnly lets through requests whose verified token has the leader role.
func leaderOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Code: "Unauthenticated", Error: "missing or invalid leader token"})
			return
		}
		if !jwt.IsLeader(claims) {
			writeJSON(w, http.StatusForbidden, errorResponse{Code: "PermissionDenied", Error: jwt.ErrNotLeader.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// observe records request counts and latency by route pattern.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(code)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
