package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/fatih/color"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	Games         int
	FramesPerGame int
	Seed          uint64

	// Results
	GamesPlayed int
	GameOvers   int
	TotalFrames int64
	Locks       int
	TotalLines  int
	Clears      [4]int
	MaxScore    int
	MaxLevel    int
	Faults      []string
	Violations  []string

	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	total time.Duration
	count int64
}

func (s *Stats) Add(sample time.Duration) {
	if s.count == 0 || sample < s.Min {
		s.Min = sample
	}
	if sample > s.Max {
		s.Max = sample
	}
	s.total += sample
	s.count++
}

func (s *Stats) Finalize() {
	if s.count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.count)
}

// Passed reports whether the run finished without faults or invariant
// violations.
func (r *Report) Passed() bool {
	return len(r.Faults) == 0 && len(r.Violations) == 0
}

func (r *Report) Verdict() string {
	if r.Passed() {
		return color.New(color.FgGreen, color.Bold).Sprint("PASS")
	}
	return color.New(color.FgRed, color.Bold).Sprintf("FAIL (%d faults, %d violations)", len(r.Faults), len(r.Violations))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Soak Report

## Configuration
- **Run Budget:** {{.Duration}}
- **Games:** {{.Games}}
- **Max Frames per Game:** {{.FramesPerGame}}
- **Seed:** {{.Seed}}

## Play
- **Games Played:** {{.GamesPlayed}} ({{.GameOvers}} ended in game over)
- **Frames:** {{.TotalFrames}}
- **Pieces Locked:** {{.Locks}}
- **Lines:** {{.TotalLines}} (singles {{index .Clears 0}}, doubles {{index .Clears 1}}, triples {{index .Clears 2}}, tetrises {{index .Clears 3}})
- **Best Score:** {{.MaxScore}}
- **Highest Level:** {{.MaxLevel}}

## Frame Time
- **Avg:** {{.UpdateTime.Avg}}
- **Min:** {{.UpdateTime.Min}}
- **Max:** {{.UpdateTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MiB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MiB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MiB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MiB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
{{- if .Faults}}
## Faults
{{range .Faults}}- {{.}}
{{end}}{{end}}
{{- if .Violations}}
## Violations
{{range .Violations}}- {{.}}
{{end}}{{end}}
## Verdict
{{.Verdict}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
