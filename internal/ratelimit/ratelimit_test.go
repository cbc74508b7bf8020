package ratelimit

import (
	"testing"
	"time"

	gerr "github.com/outingclub/trip-lottery/internal/errors"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(time.Second, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("test-key") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if limiter.Allow("test-key") {
		t.Error("4th request should be blocked")
	}

	if !limiter.Allow("other-key") {
		t.Error("Other key should not share the counter")
	}
}

func TestLimiter_WindowExpiry(t *testing.T) {
	limiter := NewLimiter(time.Minute, 1)
	now := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("test-key") {
		t.Fatal("First request should be allowed")
	}
	if limiter.Allow("test-key") {
		t.Error("Second request in the window should be blocked")
	}

	now = now.Add(time.Minute + time.Second)
	if !limiter.Allow("test-key") {
		t.Error("Request after window expiry should be allowed")
	}
}

func TestLimiter_Remaining(t *testing.T) {
	limiter := NewLimiter(time.Second, 5)

	if remaining := limiter.Remaining("test-key"); remaining != 5 {
		t.Errorf("Expected 5 remaining, got %d", remaining)
	}

	limiter.Allow("test-key")
	limiter.Allow("test-key")

	if remaining := limiter.Remaining("test-key"); remaining != 3 {
		t.Errorf("Expected 3 remaining, got %d", remaining)
	}
}

func TestSignupLimiter_CheckSignup(t *testing.T) {
	limiter := NewSignupLimiter(Config{Window: time.Hour, SignupsPerIP: 3, SignupsPerParticipant: 2})

	if err := limiter.CheckSignup("192.168.1.1", 7); err != nil {
		t.Errorf("First signup should succeed: %v", err)
	}
	if err := limiter.CheckSignup("192.168.1.1", 7); err != nil {
		t.Errorf("Second signup should succeed: %v", err)
	}

	if err := limiter.CheckSignup("192.168.1.2", 7); err != gerr.TooManySignups {
		t.Errorf("3rd signup of the same participant should be blocked, got %v", err)
	}

	if err := limiter.CheckSignup("192.168.1.1", 8); err != nil {
		t.Errorf("Signup of another participant should succeed: %v", err)
	}

	if err := limiter.CheckSignup("192.168.1.1", 9); err != gerr.TooManySignups {
		t.Errorf("4th signup from the same IP should be blocked, got %v", err)
	}
}

func TestSignupLimiter_CheckReorder(t *testing.T) {
	limiter := NewSignupLimiter(Config{ReordersPerParticipant: 1})

	if err := limiter.CheckReorder(1); err != nil {
		t.Errorf("First reorder should succeed: %v", err)
	}
	if err := limiter.CheckReorder(1); err != gerr.TooManySignups {
		t.Errorf("Second reorder should be blocked, got %v", err)
	}
}

func TestSignupLimiter_SignupsRemaining(t *testing.T) {
	limiter := NewSignupLimiter(Config{SignupsPerIP: 10, SignupsPerParticipant: 5})

	_ = limiter.CheckSignup("10.0.0.1", 3)

	ipRemaining, participantRemaining := limiter.SignupsRemaining("10.0.0.1", 3)
	if ipRemaining != 9 {
		t.Errorf("Expected 9 IP signups remaining, got %d", ipRemaining)
	}
	if participantRemaining != 4 {
		t.Errorf("Expected 4 participant signups remaining, got %d", participantRemaining)
	}

	ipRemaining, _ = limiter.SignupsRemaining("", 3)
	if ipRemaining != -1 {
		t.Errorf("Expected -1 without an IP, got %d", ipRemaining)
	}
}
