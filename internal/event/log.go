package event

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Log is an append-only, ordered record of events. Line order in the
// backing store is the authoritative event order; there are no sequence
// numbers.
type Log interface {
	Append(e Event) error
	ReadAll() ([]string, error)
}

// FileLog stores one JSON object per line in a single file. It holds no
// lock: the application is a single trusted writer and each append is a
// single write call on an O_APPEND descriptor.
type FileLog struct {
	path string
}

func NewFileLog(path string) (*FileLog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("log path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &FileLog{path: path}, nil
}

// Path returns the location of the backing file.
func (l *FileLog) Path() string {
	return l.path
}

func (l *FileLog) Append(e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadAll returns the raw log lines in append order, blank lines removed.
// A missing file is an empty log; it is created so that later reads and
// appends agree on its presence.
func (l *FileLog) ReadAll() ([]string, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			f, createErr := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY, 0o644)
			if createErr != nil {
				return nil, createErr
			}
			_ = f.Close()
			return nil, nil
		}
		return nil, err
	}
	return splitLines(string(b)), nil
}

// MemoryLog is an in-process Log used by tests and by tooling that replays
// a log it already holds in memory.
type MemoryLog struct {
	lines []string
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Append(e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	l.lines = append(l.lines, string(b))
	return nil
}

// AppendRaw adds a line without serialization, malformed input included.
func (l *MemoryLog) AppendRaw(line string) {
	l.lines = append(l.lines, line)
}

func (l *MemoryLog) ReadAll() ([]string, error) {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out, nil
}

func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, ln)
	}
	return lines
}
