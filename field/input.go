package field

// Keys is the polled key state for one frame. A field remembers the
// previous frame to detect presses of Pause and Restart.
type Keys struct {
	Left     bool
	Right    bool
	Rotate   bool
	SoftDrop bool
	HardDrop bool
	Pause    bool
	Restart  bool
}

// Input applies one frame of key state. Moves and rotations are gated by
// their debounce timers, so a held key repeats at the configured delay.
// After game over only Restart is read; while paused only Pause is.
func (f *Field) Input(keys Keys) {
	defer f.flush()

	pausePressed := keys.Pause && !f.prev.Pause
	restartPressed := keys.Restart && !f.prev.Restart
	f.prev = keys

	if f.gameOver {
		if restartPressed {
			f.restart()
		}
		return
	}

	if pausePressed {
		f.togglePause()
	}
	if f.clock.Paused() || f.current == nil {
		return
	}

	if !f.moveTimer.Active() {
		if keys.Left {
			f.current.MoveHorizontal(-1)
			f.moveTimer.Activate()
		}
		if keys.Right {
			f.current.MoveHorizontal(1)
			f.moveTimer.Activate()
		}
	}

	if !f.rotateTimer.Active() && keys.Rotate {
		f.current.Rotate()
		f.rotateTimer.Activate()
	}

	if !f.downPressed && keys.SoftDrop {
		f.downPressed = true
		f.gravityTimer.SetDuration(f.fastGravity)
	}
	if f.downPressed && !keys.SoftDrop {
		f.downPressed = false
		f.gravityTimer.SetDuration(f.gravity)
	}

	if keys.HardDrop && !f.dropTimer.Active() {
		if lock := f.current.InstantDrop(); lock != nil {
			f.settle(lock)
		}
		f.dropTimer.Activate()
	}
}

func (f *Field) togglePause() {
	if f.clock.Paused() {
		f.clock.Resume()
		f.emit(Event{Kind: EventResumed})
		return
	}
	f.clock.Pause()
	f.emit(Event{Kind: EventPaused})
}
