package app

import (
	"context"
	"log/slog"

	"github.com/outingclub/trip-lottery/config"
	httpapi "github.com/outingclub/trip-lottery/internal/api/http"
	"github.com/outingclub/trip-lottery/internal/auth/jwt"
	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/engine"
	"github.com/outingclub/trip-lottery/internal/lotterysched"
	"github.com/outingclub/trip-lottery/internal/metrics"
	"github.com/outingclub/trip-lottery/internal/ratelimit"
	"github.com/outingclub/trip-lottery/internal/store"
	"github.com/outingclub/trip-lottery/internal/triplock"
)

// App is the main application
type App struct {
	hs        *httpapi.Server
	db        dependency.Repository
	redisLock *triplock.Redis
	scheduler *lotterysched.Worker
	c         *config.Config
	done      chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting trip lottery")

	metrics.Register()

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	locker, err := a.tripLocker(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to redis", slog.String("err", err.Error()))
		return err
	}

	svc, err := engine.New(&a.c.Lottery, a.db, locker)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create allocation engine", slog.String("err", err.Error()))
		return err
	}

	if a.c.Scheduler.Enabled {
		a.scheduler = lotterysched.New(&a.c.Scheduler, a.db, svc)
		if err = a.scheduler.Start(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "cannot start lottery scheduler", slog.String("err", err.Error()))
			return err
		}
	}

	if a.c.Auth.JWTSecret == "" {
		slog.Default().WarnContext(ctx, "auth.jwt_secret is not set, leader routes will reject every token")
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, svc, ratelimit.NewSignupLimiter(a.c.RateLimit), jwt.New(a.c.Auth.JWTSecret))
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.shutdown()
	}()

	return nil
}

// tripLocker serializes trip writes across replicas when a redis url is set,
// within this process otherwise.
func (a *App) tripLocker(ctx context.Context) (dependency.TripLocker, error) {
	if a.c.Lock.URL == "" {
		slog.Default().WarnContext(ctx, "no lock redis url, trip locks are process local")
		return triplock.NewLocal(), nil
	}
	rl, err := triplock.NewRedis(ctx, a.c.Lock)
	if err != nil {
		return nil, err
	}
	a.redisLock = rl
	return rl, nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
		<-a.done
		return
	}
	a.shutdown()
}

func (a *App) shutdown() {
	if a.scheduler != nil {
		_ = a.scheduler.Stop()
	}
	if a.redisLock != nil {
		_ = a.redisLock.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	close(a.done)
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
