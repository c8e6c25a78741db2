package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxDevices = 3
	DeviceTTL  = 24 * time.Hour

	maxDeviceNameLength = 60
	defaultDeviceName   = "TV"
)

type Device struct {
	ID         string
	Name       string
	UserAgent  string
	CreatedAt  time.Time
	LastActive time.Time
}

func NewDevice(id, name, userAgent string, now time.Time) Device {
	return Device{
		ID:         id,
		Name:       SafeName(name),
		UserAgent:  userAgent,
		CreatedAt:  now,
		LastActive: now,
	}
}

// IsStale reports whether the device has been idle for at least DeviceTTL.
// Devices that never reported activity are kept.
func (d Device) IsStale(now time.Time) bool {
	if d.LastActive.IsZero() {
		return false
	}
	return now.Sub(d.LastActive) >= DeviceTTL
}

// SafeName trims name, caps it at 60 characters and falls back to "TV".
func SafeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) > maxDeviceNameLength {
		trimmed = string([]rune(trimmed)[:maxDeviceNameLength])
	}
	if trimmed == "" {
		return defaultDeviceName
	}
	return trimmed
}

// PruneDevices drops stale devices and returns how many were removed.
func (s *Session) PruneDevices(now time.Time) int {
	kept := s.Devices[:0]
	removed := 0
	for _, d := range s.Devices {
		if d.IsStale(now) {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	s.Devices = kept
	return removed
}

// RegisterDevice admits a device into the session. A device with the same
// non-empty user agent or the same normalized name is refreshed and returned
// instead of creating a new one; created is false in that case.
func (s *Session) RegisterDevice(name, userAgent string, now time.Time, newID func() string) (device Device, created bool, err error) {
	s.PruneDevices(now)

	normName := SafeName(name)
	for i := range s.Devices {
		d := &s.Devices[i]
		if (userAgent != "" && d.UserAgent == userAgent) || d.Name == normName {
			d.LastActive = now
			return *d, false, nil
		}
	}

	if len(s.Devices) >= MaxDevices {
		return Device{}, false, ErrCapacityExceeded
	}

	device = NewDevice(newID(), normName, userAgent, now)
	s.Devices = append(s.Devices, device)
	return device, true, nil
}

// RemoveDevice reports whether a device with id was removed.
func (s *Session) RemoveDevice(id string) bool {
	idx := -1
	for i, d := range s.Devices {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.Devices = append(s.Devices[:idx], s.Devices[idx+1:]...)
	return true
}

func (s Session) DeviceList() []Device {
	devices := make([]Device, len(s.Devices))
	copy(devices, s.Devices)
	return devices
}
