// Package ebiten hosts the debug windows inside an Ebiten game through the
// Dear ImGui Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Overlay wraps the Ebiten-specific Dear ImGui backend. BeginFrame and
// EndFrame bracket the loop pass that runs the debugui stage, and Draw is
// called last so the windows sit on top of the game.
type Overlay struct {
	*ebitenbackend.EbitenBackend
}

// NewOverlay creates the backend and its window. imgui.ini is disabled.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{EbitenBackend: backend}
}
