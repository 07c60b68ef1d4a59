package field

import "time"

// CalculateScore credits n simultaneously cleared lines at the current
// level. The level rises by at most one per call, once the line total
// exceeds level * LinesPerLevel, and each rise speeds up gravity.
func (f *Field) CalculateScore(n int) {
	defer f.flush()
	f.calculateScore(n)
}

func (f *Field) calculateScore(n int) {
	if n <= 0 {
		return
	}

	f.lines += n
	f.score += f.cfg.Points(n) * f.level

	if f.lines > f.level*f.cfg.LinesPerLevel {
		f.level++
		f.gravity = f.clampGravity(time.Duration(float64(f.gravity) * f.cfg.LevelSpeedFactor))
		f.fastGravity = f.clampGravity(time.Duration(float64(f.gravity) * f.cfg.FastDropFactor))
		if f.downPressed {
			f.gravityTimer.SetDuration(f.fastGravity)
		} else {
			f.gravityTimer.SetDuration(f.gravity)
		}
		f.emit(Event{Kind: EventLevelUp, Score: f.score, Lines: f.lines, Level: f.level})
	}

	f.emit(Event{Kind: EventScoreChanged, Rows: n, Score: f.score, Lines: f.lines, Level: f.level})
}
