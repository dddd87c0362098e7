// Package debugui provides an immediate-mode Dear ImGui inspector for an ecs
// Manager: an entity browser, a component field inspector, a group membership
// viewer, and a performance panel.
//
// The caller owns the ImGui frame; render an Overlay between the backend's
// BeginFrame and EndFrame calls (see the debugui/ebiten subpackage).
package debugui

import "github.com/hollowpine/kitbash/ecs"

// Panel is one inspector window rendered against a Manager.
type Panel interface {
	Render(m *ecs.Manager)
}

// Overlay renders a set of inspector panels for one Manager.
type Overlay struct {
	panels []Panel
}

// NewOverlay builds an overlay with the default panel set: entity browser,
// inspector fed by the browser's selection, group viewer, and performance
// stats.
func NewOverlay() *Overlay {
	browser := NewEntityBrowser(100)
	return &Overlay{
		panels: []Panel{
			browser,
			NewInspector(browser),
			NewGroupViewer(),
			NewPerformanceStats(120),
		},
	}
}

// NewOverlayWith builds an overlay from an explicit panel list.
func NewOverlayWith(panels ...Panel) *Overlay {
	return &Overlay{panels: panels}
}

// Render draws every panel. Must run inside an ImGui frame.
func (o *Overlay) Render(m *ecs.Manager) {
	for _, p := range o.panels {
		p.Render(m)
	}
}
