package adaptor

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ponyo877/karaokesh/server/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "validation", err: domain.ErrHostcodeRequired, want: codes.InvalidArgument},
		{name: "not found", err: domain.ErrInvalidHostcode, want: codes.NotFound},
		{name: "capacity", err: domain.ErrCapacityExceeded, want: codes.ResourceExhausted},
		{name: "unavailable", err: domain.ErrNothingToPlay, want: codes.FailedPrecondition},
		{name: "persistence", err: fmt.Errorf("%w: %w", domain.ErrPersistence, errors.New("disk full")), want: codes.Internal},
		{name: "plain", err: errors.New("boom"), want: codes.Internal},
		{name: "status passthrough", err: status.Error(codes.Canceled, "gone"), want: codes.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(toStatus(tt.err)); got != tt.want {
				t.Fatalf("code = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestToStatusHidesPersistenceCause(t *testing.T) {
	err := fmt.Errorf("%w: %w", domain.ErrPersistence, errors.New("/var/lib/secret.db: disk full"))
	msg := status.Convert(toStatus(err)).Message()
	if msg != "PERSISTENCE_ERROR: failed to persist sessions" {
		t.Fatalf("message = %q", msg)
	}
}

func TestCapacityStatusCarriesGuidance(t *testing.T) {
	msg := status.Convert(toStatus(domain.ErrCapacityExceeded)).Message()
	if msg != "CAPACITY_EXCEEDED: device limit reached, max 3: remove a device first" {
		t.Fatalf("message = %q", msg)
	}
}

func TestRateLimiterPerPeer(t *testing.T) {
	l := NewRateLimiter(0.001, 2)
	for i := 0; i < 2; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected within burst", i)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("request beyond burst allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatalf("other peer rejected")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	l := NewRateLimiter(0, 0)
	for i := 0; i < 100; i++ {
		if !l.Allow("peer") {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
}

func TestRateLimiterSweep(t *testing.T) {
	l := NewRateLimiter(10, 10)
	l.Allow("old")
	cutoff := time.Now().Add(time.Second)
	if removed := l.Sweep(cutoff); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if removed := l.Sweep(cutoff); removed != 0 {
		t.Fatalf("second sweep removed %d", removed)
	}
}
