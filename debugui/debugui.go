// Package debugui provides Dear ImGui inspector windows for a running field
// and the frame loop that drives it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function that runs once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends use it to avoid forwarding keys typed into a debug window to
// the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Stage refreshes InputState and defers every item's render function until
// all other stages of the frame have run.
type Stage struct {
	items []Item
	input InputState
}

func NewStage() *Stage {
	return &Stage{}
}

// Add registers an item to render every frame.
func (s *Stage) Add(item Item) {
	s.items = append(s.items, item)
}

// Input returns the capture state observed during the last frame.
func (s *Stage) Input() InputState {
	return s.input
}

// Execute updates input state and queues all render functions.
func (s *Stage) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.input.WantCaptureMouse = io.WantCaptureMouse()
	s.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.items {
		frame.Defer(item.Render)
	}
}
