package debugui

import (
	"fmt"

	"github.com/plus3/blockfall/field"
)

// EventLog keeps the most recent field events as display lines.
type EventLog struct {
	capacity int
	lines    []string
	total    int
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{capacity: max(capacity, 1)}
}

// Add appends a formatted event, dropping the oldest past capacity.
func (l *EventLog) Add(ev field.Event) {
	l.total++
	line := fmt.Sprintf("#%d %s", l.total, describe(ev))
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:len(l.lines)-1]
	}
	l.lines = append(l.lines, line)
}

// Lines returns the retained lines, oldest first.
func (l *EventLog) Lines() []string {
	return l.lines
}

func (l *EventLog) Total() int {
	return l.total
}

func describe(ev field.Event) string {
	switch ev.Kind {
	case field.EventLocked:
		return fmt.Sprintf("%s %s at %v", ev.Kind, ev.Piece, ev.Cells)
	case field.EventScoreChanged:
		return fmt.Sprintf("%s +%d rows, score %d lines %d", ev.Kind, ev.Rows, ev.Score, ev.Lines)
	case field.EventLevelUp:
		return fmt.Sprintf("%s to %d", ev.Kind, ev.Level)
	case field.EventGameOver:
		return fmt.Sprintf("%s with score %d", ev.Kind, ev.Score)
	case field.EventFault:
		return fmt.Sprintf("%s: %v", ev.Kind, ev.Err)
	default:
		return ev.Kind.String()
	}
}
