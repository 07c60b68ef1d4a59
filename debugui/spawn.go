package debugui

import (
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
)

// Attach registers the standard inspector windows for f on l and returns
// the stage that renders them. The stage is registered last so its
// deferred renders see the state produced by every earlier stage.
func Attach(l *loop.Loop, f *field.Field) *Stage {
	stage := NewStage()

	perf := NewPerformanceStats(l, 120)
	l.Register(perf)
	stage.Add(Item{Render: perf.Render})

	inspector := NewFieldInspector(f, 32)
	stage.Add(Item{Render: inspector.Render})

	l.RegisterNamed("debugui", stage)
	return stage
}
