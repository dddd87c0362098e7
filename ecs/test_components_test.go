package ecs_test

import (
	"github.com/hollowpine/kitbash/ecs"
)

// Common test component kinds.

// Counter accumulates delta time.
type Counter struct {
	ecs.BaseComponent
	Value float64
}

func (c *Counter) OnUpdate(dt float64) {
	c.Value += dt
}

// Lifetime marks its entity dead once the sibling Counter reaches Threshold.
type Lifetime struct {
	ecs.BaseComponent
	Threshold float64

	counter *Counter
}

func (l *Lifetime) OnAttach() {
	l.counter = ecs.Get[*Counter](l.Owner())
}

func (l *Lifetime) OnUpdate(dt float64) {
	if l.counter.Value >= l.Threshold {
		l.Owner().MarkDead()
	}
}

// Named carries a label for identifying entities in assertions.
type Named struct {
	ecs.BaseComponent
	Name string
}

// Painter appends its label to a *paintLog render target.
type Painter struct {
	ecs.BaseComponent
	Label string
}

func (p *Painter) OnRender(target ecs.RenderTarget) {
	if log, ok := target.(*paintLog); ok {
		log.lines = append(log.lines, p.Label)
	}
}

type paintLog struct {
	lines []string
}

// hookRecorder notes the order lifecycle hooks fire in.
type hookRecorder struct {
	ecs.BaseComponent
	Label string

	calls *[]string
}

func (h *hookRecorder) OnAttach() {
	*h.calls = append(*h.calls, h.Label+":attach")
}

func (h *hookRecorder) OnUpdate(dt float64) {
	*h.calls = append(*h.calls, h.Label+":update")
}

// Solo exists to occupy a distinct component kind.
type Solo struct {
	ecs.BaseComponent
}
