package ops

import (
	"taskledger/internal/event"
	"taskledger/internal/telemetry"
)

// LogReport is the replay summary of one event log file, used by the drill
// command to compare a restored log against its source.
type LogReport struct {
	TotalLines     int
	LiveTasks      int
	MalformedLines int
}

// VerifyLog replays the log at path and reports what it folds down to.
func VerifyLog(path string) (LogReport, error) {
	l, err := event.NewFileLog(path)
	if err != nil {
		return LogReport{}, err
	}
	lines, err := l.ReadAll()
	if err != nil {
		return LogReport{}, err
	}
	s := telemetry.CalculateStats(lines)
	return LogReport{
		TotalLines:     s.TotalLines,
		LiveTasks:      s.LiveTasks,
		MalformedLines: s.MalformedLines,
	}, nil
}
