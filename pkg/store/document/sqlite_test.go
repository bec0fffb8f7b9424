package document

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/leak-finder/pkg/models/domain"
	"github.com/de-tools/leak-finder/pkg/models/store"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore_LoadMissing(t *testing.T) {
	st := openTestStore(t)

	_, err := st.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	doc := Seed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, st.Save(ctx, doc))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Resources, loaded.Resources)
	assert.Equal(t, doc.Settings, loaded.Settings)
	assert.Equal(t, store.SchemaVersion, loaded.Version)
}

func TestSQLiteStore_Revision(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	rev, err := st.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rev)

	doc := Seed(time.Now())
	require.NoError(t, st.Save(ctx, doc))
	require.NoError(t, st.Save(ctx, doc))
	require.NoError(t, st.Save(ctx, doc))

	rev, err = st.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rev, "revision counts every write")
}

func TestSQLiteStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	first := Seed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, st.Save(ctx, first))

	second := Seed(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	second.Settings.Tier = "PRO"
	second.Resources = second.Resources[:2]
	require.NoError(t, st.Save(ctx, second))

	loaded, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PRO", loaded.Settings.Tier)
	assert.Len(t, loaded.Resources, 2, "a full save replaces the document, it does not merge")
}

func TestSQLiteStore_LoadRejectsUnknownVersion(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.db.ExecContext(ctx,
		`INSERT INTO documents (name, revision, data) VALUES (?, 1, ?)`,
		st.name, `{"version": 99}`,
	)
	require.NoError(t, err)

	_, err = st.Load(ctx)
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "decode", serr.Op)
	assert.Contains(t, serr.Error(), "unsupported document version")
}

func TestSQLiteStore_LoadRejectsCorruptPayload(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.db.ExecContext(ctx,
		`INSERT INTO documents (name, revision, data) VALUES (?, 1, ?)`,
		st.name, `{not json`,
	)
	require.NoError(t, err)

	_, err = st.Load(ctx)
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "decode", serr.Op)
}

func TestSQLiteStore_QueryFailurePropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT data FROM documents").WillReturnError(boom)

	st := NewSQLiteStore(db)
	_, err = st.Load(context.Background())

	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "load", serr.Op)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SaveFailurePropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("database is locked")
	mock.ExpectExec("INSERT INTO documents").WillReturnError(boom)

	st := NewSQLiteStore(db)
	err = st.Save(context.Background(), Seed(time.Now()))

	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "save", serr.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}
