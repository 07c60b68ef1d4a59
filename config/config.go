// Package config holds the immutable rules configuration shared by the
// field, the piece queue and the frontends.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// RGB is a color as three 8-bit channels.
type RGB [3]uint8

// Config is passed by value to constructors. Use Clone before handing a
// copy out, since ScoreTable and Palette are shared between copies.
type Config struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`

	// Spawn translation applied to every block offset. The default centers
	// pieces horizontally with their pivot one row above the visible field.
	SpawnColumn int `yaml:"spawn_column"`
	SpawnRow    int `yaml:"spawn_row"`

	Gravity          time.Duration `yaml:"gravity"`
	MinGravity       time.Duration `yaml:"min_gravity"`
	FastDropFactor   float64       `yaml:"fast_drop_factor"`
	LevelSpeedFactor float64       `yaml:"level_speed_factor"`

	MoveDelay   time.Duration `yaml:"move_delay"`
	RotateDelay time.Duration `yaml:"rotate_delay"`
	DropDelay   time.Duration `yaml:"drop_delay"`

	LinesPerLevel int   `yaml:"lines_per_level"`
	ScoreTable    []int `yaml:"score_table"`

	PreviewDepth int    `yaml:"preview_depth"`
	Seed         uint64 `yaml:"seed"`

	Palette    map[string]RGB `yaml:"palette"`
	Background RGB            `yaml:"background"`
	LineColor  RGB            `yaml:"line_color"`
}

// Default returns the stock rules: a 10x20 field, 800ms gravity and the
// 40/100/300/1200 score curve.
func Default() Config {
	return Config{
		Rows:    20,
		Columns: 10,

		SpawnColumn: 10 / 2,
		SpawnRow:    -1,

		Gravity:          800 * time.Millisecond,
		MinGravity:       50 * time.Millisecond,
		FastDropFactor:   0.3,
		LevelSpeedFactor: 0.75,

		MoveDelay:   100 * time.Millisecond,
		RotateDelay: 200 * time.Millisecond,
		DropDelay:   400 * time.Millisecond,

		LinesPerLevel: 10,
		ScoreTable:    []int{40, 100, 300, 1200},

		PreviewDepth: 3,

		Palette: map[string]RGB{
			"T": {123, 33, 127},
			"O": {255, 213, 0},
			"J": {3, 65, 174},
			"L": {255, 151, 28},
			"I": {108, 198, 217},
			"S": {114, 203, 59},
			"Z": {255, 50, 19},
		},
		Background: RGB{28, 28, 28},
		LineColor:  RGB{255, 255, 255},
	}
}

// Clone returns a copy that shares no slice or map storage with c.
func (c Config) Clone() Config {
	c.ScoreTable = slices.Clone(c.ScoreTable)
	c.Palette = maps.Clone(c.Palette)
	return c
}

// Validate reports every problem found, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Rows >= 4, "rows must be at least 4, got %d", c.Rows)
	check(c.Columns >= 4, "columns must be at least 4, got %d", c.Columns)
	check(c.SpawnColumn >= 1 && c.SpawnColumn < c.Columns-1,
		"spawn_column %d leaves no room for a piece in %d columns", c.SpawnColumn, c.Columns)
	check(c.SpawnRow < c.Rows-2, "spawn_row %d is too low for %d rows", c.SpawnRow, c.Rows)
	check(c.Gravity > 0, "gravity must be positive, got %s", c.Gravity)
	check(c.MinGravity > 0 && c.MinGravity <= c.Gravity,
		"min_gravity must be in (0, gravity], got %s", c.MinGravity)
	check(c.FastDropFactor > 0 && c.FastDropFactor <= 1,
		"fast_drop_factor must be in (0, 1], got %v", c.FastDropFactor)
	check(c.LevelSpeedFactor > 0 && c.LevelSpeedFactor <= 1,
		"level_speed_factor must be in (0, 1], got %v", c.LevelSpeedFactor)
	check(c.MoveDelay >= 0 && c.RotateDelay >= 0 && c.DropDelay >= 0,
		"input delays must not be negative")
	check(c.LinesPerLevel > 0, "lines_per_level must be positive, got %d", c.LinesPerLevel)
	check(len(c.ScoreTable) == 4, "score_table needs 4 entries, got %d", len(c.ScoreTable))
	for i := 1; i < len(c.ScoreTable); i++ {
		check(c.ScoreTable[i] > c.ScoreTable[i-1],
			"score_table must be strictly increasing at entry %d", i+1)
	}
	check(len(c.ScoreTable) == 0 || c.ScoreTable[0] > 0, "score_table entries must be positive")
	check(c.PreviewDepth >= 1, "preview_depth must be at least 1, got %d", c.PreviewDepth)

	return errors.Join(errs...)
}

// Points returns the base score for clearing n rows at once. Counts above
// the table size are scored as the largest entry.
func (c Config) Points(n int) int {
	if n <= 0 || len(c.ScoreTable) == 0 {
		return 0
	}
	if n > len(c.ScoreTable) {
		n = len(c.ScoreTable)
	}
	return c.ScoreTable[n-1]
}

// Color returns the palette entry for a piece name, or the line color if
// the palette has none.
func (c Config) Color(name string) RGB {
	if rgb, ok := c.Palette[name]; ok {
		return rgb
	}
	return c.LineColor
}
