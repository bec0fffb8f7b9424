package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/leak-finder/pkg/models/domain"
)

func TestFeed_AddPrependsNewest(t *testing.T) {
	feed := NewFeed()

	feed.Add("first", domain.LogInfo)
	feed.Add("second", domain.LogSuccess)

	entries := feed.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Message)
	assert.Equal(t, domain.LogSuccess, entries[0].Level)
	assert.Equal(t, "first", entries[1].Message)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestFeed_CapsAtMaxEntries(t *testing.T) {
	feed := NewFeed()

	for i := 0; i < maxEntries+20; i++ {
		feed.Add(fmt.Sprintf("entry %d", i), domain.LogInfo)
	}

	entries := feed.Entries()
	assert.Len(t, entries, maxEntries)
	assert.Equal(t, fmt.Sprintf("entry %d", maxEntries+19), entries[0].Message,
		"newest entries survive the cap")
}

func TestFeed_NotifiesSubscribers(t *testing.T) {
	feed := NewFeedWithNow(func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	})

	var seen []domain.LogEntry
	feed.Subscribe(func(entry domain.LogEntry) {
		seen = append(seen, entry)
	})

	feed.Add("resource decommissioned", domain.LogWarn)

	require.Len(t, seen, 1)
	assert.Equal(t, "resource decommissioned", seen[0].Message)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), seen[0].Timestamp)
}

func TestFeed_EntriesReturnsCopy(t *testing.T) {
	feed := NewFeed()
	feed.Add("only", domain.LogInfo)

	entries := feed.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "only", feed.Entries()[0].Message)
}
