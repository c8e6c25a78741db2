package domain

import "strings"

type UserMessage struct {
	Username string
	PhotoURL string
	Message  string
}

type QueueItem struct {
	ID          string
	Title       string
	Genre       string
	SubmittedBy *UserMessage
}

func NewQueueItem(id, title, genre string) QueueItem {
	return QueueItem{
		ID:    strings.TrimSpace(id),
		Title: title,
		Genre: genre,
	}
}

func (q QueueItem) clone() QueueItem {
	c := q
	if q.SubmittedBy != nil {
		user := *q.SubmittedBy
		c.SubmittedBy = &user
	}
	return c
}

type PlaybackSource int

const (
	SourceUnknown PlaybackSource = iota
	SourceQueue
	SourceRandom
)

func (s PlaybackSource) String() string {
	switch s {
	case SourceQueue:
		return "queue"
	case SourceRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Playback is what NextVideo served: a queue item, or a bare id from the
// random pool.
type Playback struct {
	Source PlaybackSource
	Item   QueueItem
	ID     string
}

func (p Playback) VideoID() string {
	if p.Source == SourceQueue {
		return p.Item.ID
	}
	return p.ID
}

// SubmitVideo appends item to the tail of the queue.
func (s *Session) SubmitVideo(item QueueItem, user *UserMessage) (QueueItem, error) {
	id := strings.TrimSpace(item.ID)
	if id == "" {
		return QueueItem{}, ErrVideoIDRequired
	}
	queued := QueueItem{
		ID:    id,
		Title: item.Title,
		Genre: item.Genre,
	}
	if user != nil {
		u := *user
		queued.SubmittedBy = &u
	}
	s.Queue = append(s.Queue, queued)
	return queued.clone(), nil
}

// NextVideo pops the head of the queue. When the queue is empty it asks
// fallback for a random pool id and leaves the queue untouched.
func (s *Session) NextVideo(fallback func() (string, bool)) (Playback, error) {
	if len(s.Queue) > 0 {
		head := s.Queue[0]
		s.Queue = s.Queue[1:]
		s.LastPlayed = head.ID
		return Playback{Source: SourceQueue, Item: head.clone()}, nil
	}

	id, ok := fallback()
	if !ok {
		return Playback{}, ErrNothingToPlay
	}
	s.LastPlayed = id
	return Playback{Source: SourceRandom, ID: id}, nil
}

func (s Session) QueueItems() []QueueItem {
	items := make([]QueueItem, len(s.Queue))
	for i, item := range s.Queue {
		items[i] = item.clone()
	}
	return items
}

// FilterByGenre returns the queued items tagged with genre, in queue order.
func (s Session) FilterByGenre(genre string) []QueueItem {
	want := strings.TrimSpace(genre)
	items := []QueueItem{}
	for _, item := range s.Queue {
		if strings.EqualFold(strings.TrimSpace(item.Genre), want) {
			items = append(items, item.clone())
		}
	}
	return items
}
