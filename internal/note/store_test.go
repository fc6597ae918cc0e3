package note

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFindsMatchingNote(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "2025-03-10 Monday.md")
	require.NoError(t, os.WriteFile(want, []byte("existing content"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025-03-09 Sunday.md"), []byte("other day"), 0644))

	s := NewStore(dir, "*{date}*.md", nil)
	path, content, err := s.Resolve("2025-03-10")

	require.NoError(t, err)
	require.Equal(t, want, path)
	require.Equal(t, "existing content", content)
}

func TestResolveCreatesBlankNote(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, "{date}.md", nil)

	path, content, err := s.Resolve("2025-03-10")

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2025-03-10.md"), path)
	require.Empty(t, content)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "blank note should exist on disk")
}

func TestResolveCreatesNotesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault", "daily")
	s := NewStore(dir, "{date}.md", nil)

	path, _, err := s.Resolve("2025-03-10")

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2025-03-10.md"), path)
}

func TestResolveBadPattern(t *testing.T) {
	s := NewStore(t.TempDir(), "[", nil)

	_, _, err := s.Resolve("2025-03-10")
	require.Error(t, err)
}

func TestWriteRoundtrip(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir, "{date}.md", nil)

	path, _, err := s.Resolve("2025-03-10")
	require.NoError(t, err)

	require.NoError(t, s.Write(path, "merged content"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "merged content", string(data))
}
