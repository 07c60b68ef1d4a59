// Package loop drives a fixed sequence of stages once per frame. All stages
// run on the goroutine that calls Once or Run, which makes that goroutine
// the single owner of whatever state the stages mutate.
package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/timer"
)

// Stage is one step of a frame, such as reading input or advancing a field.
type Stage interface {
	Execute(frame *Frame)
}

// StageFunc adapts a function to the Stage interface.
type StageFunc func(frame *Frame)

func (fn StageFunc) Execute(frame *Frame) {
	fn(frame)
}

// Stats provides statistics about loop execution.
type Stats struct {
	StageCount int
	Frames     int64
	Stages     []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Loop executes registered stages in order.
type Loop struct {
	clock      timer.Clock
	stages     []Stage
	stageStats []*stageStatsInternal
	frames     int64
	last       time.Duration
	started    bool
}

// New creates a loop that stamps frames with clock.
func New(clock timer.Clock) *Loop {
	return &Loop{
		clock:  clock,
		stages: make([]Stage, 0),
	}
}

// Register appends a stage, named after its type.
func (l *Loop) Register(stage Stage) {
	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}
	l.RegisterNamed(stageType.Name(), stage)
}

// RegisterNamed appends a stage under an explicit name.
func (l *Loop) RegisterNamed(name string, stage Stage) {
	l.stages = append(l.stages, stage)
	l.stageStats = append(l.stageStats, &stageStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered stages once, then runs deferred work.
func (l *Loop) Once() {
	now := l.clock.Now()
	var delta time.Duration
	if l.started {
		delta = now - l.last
	}
	l.last = now
	l.started = true

	frame := newFrame(now, delta)

	for i, stage := range l.stages {
		start := time.Now()
		stage.Execute(frame)
		duration := time.Since(start)

		stats := l.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.flush()
	l.frames++
}

// Run executes all stages at the given interval until the context is cancelled.
func (l *Loop) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Once()
		}
	}
}

// Stats returns statistics about stage execution.
func (l *Loop) Stats() *Stats {
	stats := &Stats{
		StageCount: len(l.stages),
		Frames:     l.frames,
		Stages:     make([]StageStats, len(l.stageStats)),
	}

	for i, internal := range l.stageStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
