package ecs

import "weak"

// EntityRef is a generation-checked handle to an entity. Unlike a raw *Entity,
// a ref becomes detectably invalid once the entity is destroyed by a sweep:
// Resolve then reports false instead of handing back a dangling reference.
//
// An EntityRef does not participate in ownership. For an entity that is marked
// dead but not yet swept, Resolve still succeeds and the caller is expected to
// check Alive.
type EntityRef struct {
	ID     EntityID
	entity *Entity
}

// CreateRef returns a handle to e. Refs are cached per entity through weak
// pointers, so repeated calls for the same live entity return the same
// *EntityRef as long as someone still holds it.
func (m *Manager) CreateRef(e *Entity) *EntityRef {
	if weakPtr, ok := m.refs.Get(e.id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		// Cached ref was collected; drop the dead weak pointer.
		m.refs.Del(e.id)
	}

	ref := &EntityRef{
		ID:     e.id,
		entity: e,
	}
	m.refs.Put(e.id, weak.Make(ref))
	return ref
}

// Resolve returns the entity a ref points to. It reports false for a nil ref
// and for any ref whose entity has been destroyed by a sweep.
func (m *Manager) Resolve(ref *EntityRef) (*Entity, bool) {
	if ref == nil || ref.ID == 0 {
		return nil, false
	}
	return ref.entity, true
}

// invalidateRef marks any outstanding handle for id as destroyed and drops it
// from the cache. Called during the entity sweep.
func (m *Manager) invalidateRef(id EntityID) {
	weakPtr, ok := m.refs.Get(id)
	if !ok {
		return
	}
	if ref := weakPtr.Value(); ref != nil {
		ref.ID = 0
		ref.entity = nil
	}
	m.refs.Del(id)
}
