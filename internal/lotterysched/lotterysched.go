package lotterysched

import (
	"context"
	"fmt"
	"time"

	"github.com/outingclub/trip-lottery/internal/dependency"
	"github.com/outingclub/trip-lottery/internal/entity"
)

// Config holds configuration for the lottery scheduler.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		WorkerInterval: time.Minute,
	}
}

// Runner runs the lottery of one cycle.
type Runner interface {
	RunLottery(ctx context.Context, cycleId string) (*entity.LotteryRun, error)
}

// Worker runs the lottery of every cycle whose signups have closed.
type Worker struct {
	repo   dependency.Repository
	runner Runner
	c      *Config
	ctx    context.Context
	stop   context.CancelFunc
}

// New creates a new lottery scheduler.
func New(c *Config, repo dependency.Repository, runner Runner) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = time.Minute
	}
	return &Worker{
		repo:   repo,
		runner: runner,
		c:      c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("lottery scheduler already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("lottery scheduler already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
