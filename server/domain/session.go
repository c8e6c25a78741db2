package domain

import "time"

// Session is the shared playback context for one venue. It is the unit of
// persistence and the unit of mutation.
type Session struct {
	ID         string
	Hostcode   string
	Business   Business
	Devices    []Device
	Queue      []QueueItem
	LastPlayed string
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSession(id string, profile BusinessProfile, now time.Time) Session {
	return Session{
		ID:        id,
		Hostcode:  profile.Hostcode,
		Business:  profile.Business(),
		Devices:   []Device{},
		Queue:     []QueueItem{},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch records a committed mutation.
func (s *Session) Touch(now time.Time) {
	s.UpdatedAt = now
	s.Version++
}

// Clone returns a deep copy that shares no slices or pointers with s.
func (s Session) Clone() Session {
	c := s
	c.Devices = make([]Device, len(s.Devices))
	copy(c.Devices, s.Devices)
	c.Queue = make([]QueueItem, len(s.Queue))
	for i, item := range s.Queue {
		c.Queue[i] = item.clone()
	}
	return c
}

func (s Session) IsValid() bool {
	return s.ID != "" && s.Hostcode != ""
}

func CloneSessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		out[i] = s.Clone()
	}
	return out
}
