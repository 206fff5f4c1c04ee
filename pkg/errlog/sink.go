// Package errlog classifies errors and keeps the most recent ones in a
// bounded, explicitly owned buffer for diagnostics.
package errlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultCapacity = 100

type Entry struct {
	ID        uuid.UUID `json:"id"`
	Time      time.Time `json:"time"`
	Kind      Kind      `json:"kind"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
}

// Sink is a fixed-capacity ring of entries. Once full, recording a new entry
// drops the oldest one. Safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	entries []Entry
	start   int
	size    int
	now     func() time.Time
}

func NewSink(capacity int) *Sink {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Sink{
		entries: make([]Entry, capacity),
		now:     time.Now,
	}
}

// Record classifies err and stores it under op. A nil error is ignored and
// yields a zero Entry.
func (s *Sink) Record(_ context.Context, op string, err error) Entry {
	if err == nil {
		return Entry{}
	}

	entry := Entry{
		ID:        uuid.New(),
		Kind:      Classify(err),
		Operation: op,
		Message:   err.Error(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry.Time = s.now()

	capacity := len(s.entries)
	if s.size < capacity {
		s.entries[(s.start+s.size)%capacity] = entry
		s.size++
	} else {
		s.entries[s.start] = entry
		s.start = (s.start + 1) % capacity
	}

	return entry
}

// Entries returns a copy of the buffered entries, oldest first.
func (s *Sink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Entry, s.size)
	for i := 0; i < s.size; i++ {
		result[i] = s.entries[(s.start+i)%len(s.entries)]
	}

	return result
}

func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.size
}

func (s *Sink) Capacity() int {
	return len(s.entries)
}
