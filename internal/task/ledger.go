package task

import (
	"log"
	"time"

	"taskledger/internal/event"
)

// CreateFields are the inputs for a new task. Validation (non-empty name)
// is the HTTP layer's job; the ledger trusts its caller.
type CreateFields struct {
	Name        string
	Date        string
	Time        string
	Description string
}

// Ledger is the collaborator-facing surface over the event log: every read
// replays the full log, every write appends exactly one event. It keeps no
// state of its own.
type Ledger struct {
	log    event.Log
	logger *log.Logger
	newID  func() string
	now    func() time.Time
}

type Option func(*Ledger)

// WithIDSource replaces the id generator, so tests can supply
// deterministic ids.
func WithIDSource(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// WithClock replaces the wall clock used for event timestamps.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) { l.now = fn }
}

func NewLedger(lg event.Log, logger *log.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		log:    lg,
		logger: logger,
		now:    time.Now,
	}
	l.newID = func() string { return event.NewID(l.now()) }
	for _, o := range opts {
		o(l)
	}
	return l
}

// ProjectTasks replays the full log and returns the live tasks.
func (l *Ledger) ProjectTasks() ([]Task, error) {
	lines, err := l.log.ReadAll()
	if err != nil {
		return nil, err
	}
	return ProjectAt(lines, l.logger, l.now), nil
}

// AppendCreate assigns an id, appends a create event and returns the id.
func (l *Ledger) AppendCreate(f CreateFields) (string, error) {
	id := l.newID()
	e := event.Event{
		Type:        event.TypeCreate,
		ID:          id,
		Name:        f.Name,
		Date:        f.Date,
		Time:        f.Time,
		Description: f.Description,
		CreatedAt:   event.Timestamp(l.now()),
	}
	if err := l.log.Append(e); err != nil {
		return "", err
	}
	return id, nil
}

// AppendDelete appends a tombstone for id. Deleting an id that was never
// created is not an error; the event is recorded like any other.
func (l *Ledger) AppendDelete(id string) error {
	return l.log.Append(event.Event{
		Type:      event.TypeDelete,
		ID:        id,
		DeletedAt: event.Timestamp(l.now()),
	})
}
