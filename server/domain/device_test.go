package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testSession(now time.Time) Session {
	return NewSession("session-1", NewBusinessProfile("919190", "Scret Lounge", "", ""), now)
}

func TestSafeName(t *testing.T) {
	long := strings.Repeat("a", 75)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "blank defaults to TV", in: "", want: "TV"},
		{name: "whitespace defaults to TV", in: "   \t", want: "TV"},
		{name: "trimmed", in: "  Living Room  ", want: "Living Room"},
		{name: "capped at 60", in: long, want: strings.Repeat("a", 60)},
		{name: "multibyte capped by character", in: strings.Repeat("テ", 70), want: strings.Repeat("テ", 60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeName(tt.in); got != tt.want {
				t.Fatalf("SafeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegisterDeviceDefaultsNameToTV(t *testing.T) {
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(now)

	d, created, err := s.RegisterDevice("", "ua-1", now, sequentialIDs("dev"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !created {
		t.Fatalf("expected a new device")
	}
	if d.Name != "TV" {
		t.Fatalf("name = %q, want TV", d.Name)
	}
	if !d.CreatedAt.Equal(now) || !d.LastActive.Equal(now) {
		t.Fatalf("timestamps = %v/%v, want %v", d.CreatedAt, d.LastActive, now)
	}
}

func TestRegisterDeviceDeduplicatesUserAgent(t *testing.T) {
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(now)
	ids := sequentialIDs("dev")

	first, _, err := s.RegisterDevice("Stage", "ua-1", now, ids)
	if err != nil {
		t.Fatalf("register first: %v", err)
	}
	later := now.Add(time.Hour)
	second, created, err := s.RegisterDevice("Bar", "ua-1", later, ids)
	if err != nil {
		t.Fatalf("register second: %v", err)
	}
	if created {
		t.Fatalf("expected existing device to be reused")
	}
	if second.ID != first.ID {
		t.Fatalf("id = %s, want %s", second.ID, first.ID)
	}
	if second.Name != "Stage" {
		t.Fatalf("name changed to %q", second.Name)
	}
	if !second.LastActive.Equal(later) {
		t.Fatalf("lastActive = %v, want %v", second.LastActive, later)
	}
	if len(s.Devices) != 1 {
		t.Fatalf("devices = %d, want 1", len(s.Devices))
	}
}

func TestRegisterDeviceDeduplicatesName(t *testing.T) {
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(now)
	ids := sequentialIDs("dev")

	first, _, _ := s.RegisterDevice("  Stage ", "", now, ids)
	second, created, err := s.RegisterDevice("Stage", "ua-other", now, ids)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created || second.ID != first.ID {
		t.Fatalf("expected name match to reuse %s, got %s (created=%v)", first.ID, second.ID, created)
	}
}

func TestRegisterDeviceCapacity(t *testing.T) {
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(now)
	ids := sequentialIDs("dev")

	for i := 0; i < MaxDevices; i++ {
		if _, _, err := s.RegisterDevice(fmt.Sprintf("tv-%d", i), fmt.Sprintf("ua-%d", i), now, ids); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	_, _, err := s.RegisterDevice("tv-4", "ua-4", now, ids)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if len(s.Devices) != MaxDevices {
		t.Fatalf("devices = %d, want %d", len(s.Devices), MaxDevices)
	}

	// A known device still reconnects while the session is full.
	if _, created, err := s.RegisterDevice("tv-0", "ua-0", now, ids); err != nil || created {
		t.Fatalf("reconnect at capacity: created=%v err=%v", created, err)
	}
}

func TestRegisterDevicePrunesStaleDevices(t *testing.T) {
	start := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(start)
	ids := sequentialIDs("dev")

	for i := 0; i < MaxDevices; i++ {
		if _, _, err := s.RegisterDevice(fmt.Sprintf("tv-%d", i), "", start, ids); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}

	// Stale devices stay listed until the next register call.
	later := start.Add(DeviceTTL)
	if len(s.DeviceList()) != MaxDevices {
		t.Fatalf("devices pruned without a register call")
	}

	d, created, err := s.RegisterDevice("tv-new", "", later, ids)
	if err != nil {
		t.Fatalf("register after ttl: %v", err)
	}
	if !created {
		t.Fatalf("expected new device")
	}
	if len(s.Devices) != 1 || s.Devices[0].ID != d.ID {
		t.Fatalf("devices = %+v, want only %s", s.Devices, d.ID)
	}
}

func TestDeviceIsStale(t *testing.T) {
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		lastActive time.Time
		want       bool
	}{
		{name: "fresh", lastActive: now.Add(-time.Hour), want: false},
		{name: "just under ttl", lastActive: now.Add(-DeviceTTL + time.Millisecond), want: false},
		{name: "exactly ttl", lastActive: now.Add(-DeviceTTL), want: true},
		{name: "never active", lastActive: time.Time{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Device{ID: "d", LastActive: tt.lastActive}
			if got := d.IsStale(now); got != tt.want {
				t.Fatalf("IsStale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveDevice(t *testing.T) {
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(now)
	ids := sequentialIDs("dev")
	a, _, _ := s.RegisterDevice("a", "ua-a", now, ids)
	b, _, _ := s.RegisterDevice("b", "ua-b", now, ids)

	before := s.DeviceList()
	if s.RemoveDevice("missing") {
		t.Fatalf("removing unknown id reported true")
	}
	after := s.DeviceList()
	if len(before) != len(after) {
		t.Fatalf("devices changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("device %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}

	if !s.RemoveDevice(a.ID) {
		t.Fatalf("expected removal of %s", a.ID)
	}
	if len(s.Devices) != 1 || s.Devices[0].ID != b.ID {
		t.Fatalf("devices = %+v, want only %s", s.Devices, b.ID)
	}
}

func TestDeviceCapNeverExceededUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	s := testSession(now)
	ids := sequentialIDs("dev")

	for step := 0; step < 2000; step++ {
		now = now.Add(time.Duration(rng.IntN(120)) * time.Minute)
		switch rng.IntN(3) {
		case 0, 1:
			name := fmt.Sprintf("tv-%d", rng.IntN(8))
			ua := ""
			if rng.IntN(2) == 0 {
				ua = fmt.Sprintf("ua-%d", rng.IntN(8))
			}
			_, _, err := s.RegisterDevice(name, ua, now, ids)
			if err != nil && !errors.Is(err, ErrCapacityExceeded) {
				t.Fatalf("step %d: unexpected error %v", step, err)
			}
		case 2:
			if len(s.Devices) > 0 && rng.IntN(2) == 0 {
				s.RemoveDevice(s.Devices[rng.IntN(len(s.Devices))].ID)
			} else {
				s.RemoveDevice("unknown")
			}
		}

		if len(s.Devices) > MaxDevices {
			t.Fatalf("step %d: %d devices", step, len(s.Devices))
		}
		seenUA := map[string]bool{}
		seenName := map[string]bool{}
		for _, d := range s.Devices {
			if d.UserAgent != "" && seenUA[d.UserAgent] {
				t.Fatalf("step %d: duplicate user agent %s", step, d.UserAgent)
			}
			if seenName[d.Name] {
				t.Fatalf("step %d: duplicate name %s", step, d.Name)
			}
			seenUA[d.UserAgent] = true
			seenName[d.Name] = true
		}
	}
}
