package document

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/leak-finder/pkg/models/domain"
)

func TestMemoryStore_LoadMissing(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_CopySemantics(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	doc := Seed(time.Now())
	require.NoError(t, st.Save(ctx, doc))

	// Mutating the caller's copy after save must not leak into the store.
	doc.OnboardingComplete = true
	doc.Resources[0].Tags["mutated"] = "yes"

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.OnboardingComplete)
	assert.NotContains(t, loaded.Resources[0].Tags, "mutated")

	// And mutating a loaded copy must not leak either.
	loaded.OnboardingComplete = true
	again, err := st.Load(ctx)
	require.NoError(t, err)
	assert.False(t, again.OnboardingComplete)
}

func TestSeed_Content(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := Seed(now)

	assert.Len(t, doc.Resources, 7)
	assert.Len(t, doc.AuditHistory, 12)
	assert.Equal(t, "ENTERPRISE", doc.Settings.Tier)
	assert.Equal(t, "DAILY", doc.Settings.AuditFrequency)
	assert.False(t, doc.OnboardingComplete)
	assert.Nil(t, doc.User, "nobody is logged in on first run")
	assert.NotEmpty(t, doc.TaggingStandards)
	assert.NotEmpty(t, doc.Compliance)

	// History runs oldest to newest, spaced ~30 days apart, ending before now.
	first, err := time.Parse(time.RFC3339, doc.AuditHistory[0].Timestamp)
	require.NoError(t, err)
	last, err := time.Parse(time.RFC3339, doc.AuditHistory[len(doc.AuditHistory)-1].Timestamp)
	require.NoError(t, err)
	assert.True(t, first.Before(last))
	assert.True(t, last.Before(now))

	// Deterministic for a fixed clock.
	assert.Equal(t, doc, Seed(now))
}
