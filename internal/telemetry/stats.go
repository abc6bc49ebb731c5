package telemetry

import (
	"encoding/json"

	"taskledger/internal/event"
)

// Stats summarizes the shape of the event log as it exists right now.
// It is derived on demand, never stored.
type Stats struct {
	TotalLines     int            `json:"total_lines"`
	EventCounts    map[string]int `json:"event_counts"`
	MalformedLines int            `json:"malformed_lines"`
	UnknownTypes   int            `json:"unknown_types"`
	LiveTasks      int            `json:"live_tasks"`
	TombstonedIDs  int            `json:"tombstoned_ids"`
}

// CalculateStats folds the raw log lines into counters. It follows the same
// skip-and-continue policy as projection: a malformed line is counted, not
// fatal.
func CalculateStats(lines []string) Stats {
	stats := Stats{
		TotalLines:  len(lines),
		EventCounts: make(map[string]int),
	}

	live := map[string]bool{}
	tombstoned := map[string]bool{}

	for _, ln := range lines {
		var e event.Event
		if err := json.Unmarshal([]byte(ln), &e); err != nil {
			stats.MalformedLines++
			continue
		}
		stats.EventCounts[string(e.Type)]++

		switch e.Type {
		case event.TypeCreate:
			live[e.ID] = true
		case event.TypeDelete:
			tombstoned[e.ID] = true
			delete(live, e.ID)
		default:
			stats.UnknownTypes++
		}
	}

	stats.LiveTasks = len(live)
	stats.TombstonedIDs = len(tombstoned)
	return stats
}
