package event

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"strconv"
	"time"
)

// Type discriminates log records. The set is open: replay ignores types it
// does not recognize, so new kinds can be appended without breaking old
// readers.
type Type string

const (
	TypeCreate Type = "create"
	TypeDelete Type = "delete"
)

// Event is one immutable state transition, persisted as a single JSON line.
// Create events carry the task fields; delete events carry the id and the
// deletion timestamp. Once appended an event is never mutated or removed.
type Event struct {
	Type Type   `json:"type"`
	ID   string `json:"id"`

	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`

	DeletedAt string `json:"deletedAt"`
}

type createWire struct {
	Type        Type   `json:"type"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

type deleteWire struct {
	Type      Type   `json:"type"`
	ID        string `json:"id"`
	DeletedAt string `json:"deletedAt"`
}

// MarshalJSON emits the wire shape for the event's type: delete events do
// not carry task fields, create (and unknown) events do not carry deletedAt.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Type == TypeDelete {
		return json.Marshal(deleteWire{
			Type:      e.Type,
			ID:        e.ID,
			DeletedAt: e.DeletedAt,
		})
	}
	return json.Marshal(createWire{
		Type:        e.Type,
		ID:          e.ID,
		Name:        e.Name,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	})
}

// NewID returns a task id of the form "t_<base36 millis>_<base36 rand>".
// The time component keeps ids roughly sortable; the random component makes
// collisions improbable, not impossible.
func NewID(now time.Time) string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	r := binary.BigEndian.Uint32(b[:])
	return "t_" + strconv.FormatInt(now.UnixMilli(), 36) + "_" + strconv.FormatUint(uint64(r), 36)
}

// Timestamp formats t the way the log stores timestamps.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
