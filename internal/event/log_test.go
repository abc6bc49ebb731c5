package event

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLog_AppendThenReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.log")
	l, err := NewFileLog(path)
	require.NoError(t, err)

	require.NoError(t, l.Append(Event{Type: TypeCreate, ID: "t_1", Name: "Laundry", CreatedAt: "2025-10-24T10:00:00Z"}))
	require.NoError(t, l.Append(Event{Type: TypeDelete, ID: "t_1", DeletedAt: "2025-10-24T10:05:00Z"}))

	lines, err := l.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"type":"create"`)
	assert.Contains(t, lines[1], `"type":"delete"`)

	// Append order on disk is the event order.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(b), "\n"))
}

func TestFileLog_MissingFileIsEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.log")
	l, err := NewFileLog(path)
	require.NoError(t, err)

	lines, err := l.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, lines)

	// The read lazily created the file rather than erroring.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLog_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.log")
	l, err := NewFileLog(path)
	require.NoError(t, err)

	require.NoError(t, l.Append(Event{Type: TypeCreate, ID: "t_1", Name: "A"}))
	lines, err := l.ReadAll()
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestFileLog_BlankLinesFiltered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.log")
	content := `{"type":"create","id":"t_1","name":"A","date":"","time":"","description":"","createdAt":"2025-10-24T10:00:00Z"}` + "\n\n   \n" +
		`{"type":"create","id":"t_2","name":"B","date":"","time":"","description":"","createdAt":"2025-10-24T10:01:00Z"}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := NewFileLog(path)
	require.NoError(t, err)

	lines, err := l.ReadAll()
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestFileLog_EmptyPathRejected(t *testing.T) {
	_, err := NewFileLog("   ")
	assert.Error(t, err)
}

func TestMemoryLog_RoundTrip(t *testing.T) {
	l := NewMemoryLog()
	require.NoError(t, l.Append(Event{Type: TypeCreate, ID: "t_1", Name: "A"}))
	l.AppendRaw("not json at all")

	lines, err := l.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "not json at all", lines[1])

	// ReadAll hands out a copy, not the backing slice.
	lines[0] = "mutated"
	again, err := l.ReadAll()
	require.NoError(t, err)
	assert.Contains(t, again[0], `"type":"create"`)
}
