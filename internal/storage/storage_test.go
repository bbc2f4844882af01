package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")

	s, err := New(path)
	require.NoError(t, err)

	assert.False(t, s.Exists("first_boot"))

	require.NoError(t, s.Create("first_boot", "2026-03-04T12:00:00+09:00"))
	assert.True(t, s.Exists("first_boot"))
	assert.False(t, s.Exists("other"), "markers are keyed by name")

	require.NoError(t, s.Close())
}

func TestMarkerSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Create("first_boot", "done"))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.True(t, reopened.Exists("first_boot"), "markers persist across restarts")
}
