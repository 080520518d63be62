package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/appframe/appframe/internal/database"
)

func newTestStore(t *testing.T, limit int) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "session.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewStore(db, limit)
}

func TestRecentOrderingAndDeduplication(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, 10)

	require.NoError(t, s.TouchRecent("/tmp/a"))
	require.NoError(t, s.TouchRecent("/tmp/b"))
	require.NoError(t, s.TouchRecent("/tmp/c"))
	require.NoError(t, s.TouchRecent("/tmp/a")) // bump a back to the top

	recent, err := s.Recent(10)
	require.NoError(t, err)
	require.Equal(t, []string{"/tmp/a", "/tmp/c", "/tmp/b"}, recent)
}

func TestRecentTrimsToLimit(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, 2)

	require.NoError(t, s.TouchRecent("/tmp/a"))
	require.NoError(t, s.TouchRecent("/tmp/b"))
	require.NoError(t, s.TouchRecent("/tmp/c"))

	recent, err := s.Recent(10)
	require.NoError(t, err)
	require.Equal(t, []string{"/tmp/c", "/tmp/b"}, recent)
}

func TestLastPathRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, 10)

	last, err := s.LastPath()
	require.NoError(t, err)
	require.Empty(t, last)

	require.NoError(t, s.SetLastPath("/tmp/model.json"))
	require.NoError(t, s.SetLastPath("/tmp/other.json"))

	last, err = s.LastPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/other.json", last)
}
