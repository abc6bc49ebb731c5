package task

import (
	"encoding/json"
	"log"
	"time"

	"taskledger/internal/event"
)

// State accumulates the fold over the event sequence. Output order is
// creation order: a delete evicts the id, a later create appends it at the
// end again. Deleted is write-only; it never blocks re-creation.
type State struct {
	tasks   map[string]Task
	order   []string
	Deleted map[string]bool
}

func NewState() *State {
	return &State{
		tasks:   map[string]Task{},
		Deleted: map[string]bool{},
	}
}

// Apply advances the state by one event. A create for an existing id
// replaces the task wholesale and keeps its position; events of unknown
// type are ignored. The now func only fills in a missing createdAt.
func (s *State) Apply(e event.Event, now func() time.Time) {
	switch e.Type {
	case event.TypeCreate:
		t := Task{
			ID:          e.ID,
			Name:        e.Name,
			Date:        e.Date,
			Time:        e.Time,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
		if t.CreatedAt == "" {
			t.CreatedAt = event.Timestamp(now())
		}
		if _, ok := s.tasks[e.ID]; !ok {
			s.order = append(s.order, e.ID)
		}
		s.tasks[e.ID] = t
	case event.TypeDelete:
		s.Deleted[e.ID] = true
		if _, ok := s.tasks[e.ID]; ok {
			delete(s.tasks, e.ID)
			s.order = dropID(s.order, e.ID)
		}
	}
}

// Tasks returns the live tasks in creation order.
func (s *State) Tasks() []Task {
	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Project folds raw log lines into the current live tasks. A line that does
// not parse is logged and skipped; it never aborts replay of the rest of
// the log.
func Project(lines []string, logger *log.Logger) []Task {
	return ProjectAt(lines, logger, time.Now)
}

// ProjectAt is Project with an injected clock for the missing-createdAt
// fallback.
func ProjectAt(lines []string, logger *log.Logger, now func() time.Time) []Task {
	st := NewState()
	for i, ln := range lines {
		var e event.Event
		if err := json.Unmarshal([]byte(ln), &e); err != nil {
			if logger != nil {
				logger.Printf("skipping malformed log line %d: %v", i+1, err)
			}
			continue
		}
		st.Apply(e, now)
	}
	return st.Tasks()
}

func dropID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
