// Package activity keeps the in-memory activity feed shown in the portal's
// live log panel. Entries are presentation telemetry and are never
// persisted.
package activity

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/google/uuid"
)

// maxEntries caps the feed; older entries fall off the end.
const maxEntries = 100

type Listener func(entries []domain.LogEntry)

type Feed struct {
	mu        sync.Mutex
	now       func() time.Time
	entries   []domain.LogEntry // newest first
	listeners []Listener
}

func NewFeed() *Feed {
	return &Feed{now: time.Now}
}

// NewFeedWithNow builds a feed with an injected time source for tests.
func NewFeedWithNow(now func() time.Time) *Feed {
	return &Feed{now: now}
}

// Add prepends an entry and notifies every listener synchronously with a
// snapshot of the feed.
func (f *Feed) Add(message string, level domain.LogLevel) {
	f.mu.Lock()
	ts := f.now()
	entry := domain.LogEntry{
		ID:        fmt.Sprintf("LOG-%d-%s", ts.UnixMilli(), uuid.NewString()[:4]),
		Timestamp: ts,
		Level:     level,
		Message:   message,
	}
	f.entries = append([]domain.LogEntry{entry}, f.entries...)
	if len(f.entries) > maxEntries {
		f.entries = f.entries[:maxEntries]
	}
	snapshot := slices.Clone(f.entries)
	listeners := slices.Clone(f.listeners)
	f.mu.Unlock()

	for _, cb := range listeners {
		cb(snapshot)
	}
}

func (f *Feed) Subscribe(cb Listener) {
	f.mu.Lock()
	f.listeners = append(f.listeners, cb)
	f.mu.Unlock()
}

// Entries returns a copy of the feed, newest first.
func (f *Feed) Entries() []domain.LogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.entries)
}
