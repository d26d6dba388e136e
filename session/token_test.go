package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session-token")
	s := NewFileStore(path)

	require.NoError(t, s.Save("tok-abc"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session-token")
	s := NewFileStore(path)

	require.NoError(t, s.Save("tok-abc"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session-token")
	s := NewFileStore(path)

	require.NoError(t, s.Save("tok-abc"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("tok-abc"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, s.Clear())
	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
