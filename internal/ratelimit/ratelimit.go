package ratelimit

import (
	"strconv"
	"sync"
	"time"

	gerr "github.com/outingclub/trip-lottery/internal/errors"
)

// Config sets how many signup changes a client may make per window.
type Config struct {
	Window                 time.Duration `mapstructure:"window"`
	SignupsPerIP           int           `mapstructure:"signups_per_ip"`
	SignupsPerParticipant  int           `mapstructure:"signups_per_participant"`
	ReordersPerParticipant int           `mapstructure:"reorders_per_participant"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Window:                 time.Hour,
		SignupsPerIP:           120,
		SignupsPerParticipant:  30,
		ReordersPerParticipant: 60,
	}
}

// Limiter is an in-memory fixed window counter per key.
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a limiter allowing max calls per key in each window.
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
	go l.cleanup()
	return l
}

// Allow counts a call for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.counters[key]
	if !ok || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}
	c.count++
	return true
}

// Remaining returns how many calls key may still make in the current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, ok := l.counters[key]
	if !ok || l.now().After(c.expiresAt) {
		return l.max
	}
	return max(l.max-c.count, 0)
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := l.now()
		for key, c := range l.counters {
			if now.After(c.expiresAt) {
				delete(l.counters, key)
			}
		}
		l.mu.Unlock()
	}
}

const (
	limitIPSignup          = "ip_signup"
	limitParticipantSignup = "participant_signup"
	limitParticipantOrder  = "participant_reorder"
)

// SignupLimiter throttles signup requests by client address and by participant.
type SignupLimiter struct {
	limiters map[string]*Limiter
}

// NewSignupLimiter creates the limiters described by c.
func NewSignupLimiter(c Config) *SignupLimiter {
	d := DefaultConfig()
	if c.Window <= 0 {
		c.Window = d.Window
	}
	if c.SignupsPerIP <= 0 {
		c.SignupsPerIP = d.SignupsPerIP
	}
	if c.SignupsPerParticipant <= 0 {
		c.SignupsPerParticipant = d.SignupsPerParticipant
	}
	if c.ReordersPerParticipant <= 0 {
		c.ReordersPerParticipant = d.ReordersPerParticipant
	}
	return &SignupLimiter{
		limiters: map[string]*Limiter{
			limitIPSignup:          NewLimiter(c.Window, c.SignupsPerIP),
			limitParticipantSignup: NewLimiter(c.Window, c.SignupsPerParticipant),
			limitParticipantOrder:  NewLimiter(c.Window, c.ReordersPerParticipant),
		},
	}
}

// CheckSignup returns gerr.TooManySignups when either the address or the
// participant has used up its signup allowance.
func (m *SignupLimiter) CheckSignup(ip string, participantId int) error {
	if ip != "" && !m.limiters[limitIPSignup].Allow(ip) {
		return gerr.TooManySignups
	}
	if !m.limiters[limitParticipantSignup].Allow(strconv.Itoa(participantId)) {
		return gerr.TooManySignups
	}
	return nil
}

// CheckReorder limits how often a participant re-ranks their signups.
func (m *SignupLimiter) CheckReorder(participantId int) error {
	if !m.limiters[limitParticipantOrder].Allow(strconv.Itoa(participantId)) {
		return gerr.TooManySignups
	}
	return nil
}

// SignupsRemaining returns the remaining signup allowance of the address and the participant.
func (m *SignupLimiter) SignupsRemaining(ip string, participantId int) (ipRemaining, participantRemaining int) {
	ipRemaining = -1
	if ip != "" {
		ipRemaining = m.limiters[limitIPSignup].Remaining(ip)
	}
	return ipRemaining, m.limiters[limitParticipantSignup].Remaining(strconv.Itoa(participantId))
}
