package ecs

// RenderTarget is the externally supplied drawing surface handed through
// Manager.Render. The framework assumes no contract beyond identity;
// components assert it to whatever concrete surface they draw against.
type RenderTarget = any

// Component is a behavior unit attached to an entity. Concrete kinds embed
// BaseComponent and override any subset of the lifecycle hooks:
//
//   - OnAttach fires exactly once, after the component is fully installed on
//     its entity and the owner back-reference is set, before the first
//     OnUpdate. Resolve references to sibling components here.
//   - OnUpdate advances per-frame state; dt is in seconds.
//   - OnRender issues drawing operations against the render target.
//
// The unexported owner plumbing makes embedding BaseComponent mandatory.
type Component interface {
	OnAttach()
	OnUpdate(dt float64)
	OnRender(target RenderTarget)

	setOwner(e *Entity)
	// Owner returns the entity this component is attached to, or nil before
	// attach. The reference is non-owning and can outlive the entity's alive
	// state; holders crossing a tick must re-check Owner().Alive().
	Owner() *Entity
}

// BaseComponent supplies the owner back-reference and no-op defaults for all
// lifecycle hooks.
type BaseComponent struct {
	owner *Entity
}

func (b *BaseComponent) setOwner(e *Entity) { b.owner = e }

// Owner returns the owning entity, set once at attach time.
func (b *BaseComponent) Owner() *Entity { return b.owner }

func (b *BaseComponent) OnAttach() {}

func (b *BaseComponent) OnUpdate(dt float64) {}

func (b *BaseComponent) OnRender(target RenderTarget) {}
