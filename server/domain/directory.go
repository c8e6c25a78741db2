package domain

import (
	"strings"
	"sync"
)

// HostcodeDirectory resolves venue codes to business profiles. Requests never
// mutate it; the catalog loader swaps its contents with Replace.
type HostcodeDirectory struct {
	mu       sync.RWMutex
	profiles []BusinessProfile
}

func NewHostcodeDirectory(profiles []BusinessProfile) *HostcodeDirectory {
	d := &HostcodeDirectory{}
	d.Replace(profiles)
	return d
}

// Verify returns the first profile matching code.
func (d *HostcodeDirectory) Verify(code string) (BusinessProfile, error) {
	if strings.TrimSpace(code) == "" {
		return BusinessProfile{}, ErrHostcodeRequired
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.profiles {
		if p.Matches(code) {
			return p, nil
		}
	}
	return BusinessProfile{}, ErrInvalidHostcode
}

// Replace installs a copy of profiles. Lookups already holding the read lock
// finish against the old list.
func (d *HostcodeDirectory) Replace(profiles []BusinessProfile) {
	next := make([]BusinessProfile, len(profiles))
	copy(next, profiles)

	d.mu.Lock()
	d.profiles = next
	d.mu.Unlock()
}

// Profiles returns a copy of the registered profiles in catalog order.
func (d *HostcodeDirectory) Profiles() []BusinessProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()

	profiles := make([]BusinessProfile, len(d.profiles))
	copy(profiles, d.profiles)
	return profiles
}
