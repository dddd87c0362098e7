// Package ebiten bridges the debugui panels into an Ebiten game loop through
// the Dear ImGui ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before rendering an Overlay and EndFrame after, then Draw inside the game's
// Draw callback.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ImGui backend and its window. The imgui.ini file is
// disabled so running a tool leaves no droppings next to the binary.
func NewBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}
