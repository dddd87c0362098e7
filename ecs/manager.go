package ecs

import (
	"time"
	"weak"

	"github.com/kamstrup/intmap"
)

// Manager owns all entities and drives the per-frame update/render/sweep
// cycle. It keeps one index per group holding non-owning references to member
// entities, and a cache of generation-checked EntityRefs.
//
// A Manager is single-threaded by contract: one external driver calls Update
// then Render once per frame from the same goroutine.
type Manager struct {
	registry *TypeRegistry
	entities []*Entity
	groups   [MaxGroups][]*Entity
	refs     *intmap.Map[EntityID, weak.Pointer[EntityRef]]
	nextID   EntityID

	stats managerStatsInternal
}

// NewManager creates an empty entity manager backed by the given registry.
func NewManager(registry *TypeRegistry) *Manager {
	return &Manager{
		registry: registry,
		refs:     intmap.New[EntityID, weak.Pointer[EntityRef]](256),
		nextID:   1,
	}
}

// Registry returns the component type registry this manager was built with.
func (m *Manager) Registry() *TypeRegistry { return m.registry }

// Spawn creates a new alive entity with no components and no group
// memberships, takes ownership of it, and appends it to the managed sequence.
// The returned reference is stable until a future sweep destroys the entity.
func (m *Manager) Spawn() *Entity {
	e := &Entity{
		id:      m.nextID,
		manager: m,
		alive:   true,
	}
	m.nextID++
	m.entities = append(m.entities, e)
	return e
}

// EntityCount returns the number of entities currently in the managed
// sequence, including entities marked dead but not yet swept.
func (m *Manager) EntityCount() int { return len(m.entities) }

// Entities returns the managed sequence in insertion order, dead-but-unswept
// entities included. The slice is a view owned by the manager; callers must
// not mutate it.
func (m *Manager) Entities() []*Entity { return m.entities }

// Group returns a live view over the index for group g. The view may contain
// stale entries (dead entities, or entities that left the group) until the
// next sweep; callers retaining it across an Update must re-check Alive and
// InGroup before acting on an entry.
func (m *Manager) Group(g GroupID) []*Entity {
	if int(g) >= MaxGroups {
		return nil
	}
	return m.groups[g]
}

// registerInGroup appends a non-owning reference to the group's index. Called
// by Entity.JoinGroup; duplicates are not filtered here.
func (m *Manager) registerInGroup(e *Entity, g GroupID) {
	m.groups[g] = append(m.groups[g], e)
}

// Update advances the world by dt seconds in three ordered phases:
//
//  1. Group sweep: every index drops entries whose entity is dead or whose
//     membership bit for that group is no longer set.
//  2. Entity sweep: dead entities are removed from the managed sequence,
//     destroying their components and invalidating their EntityRefs.
//  3. Update: every surviving entity updates its components, in sequence order.
//
// The group sweep must run before the entity sweep so that membership flags
// are still readable when index entries are filtered.
func (m *Manager) Update(dt float64) {
	start := time.Now()
	m.sweepGroups()
	groupsDone := time.Now()
	m.sweepEntities()
	entitiesDone := time.Now()

	for _, e := range m.entities {
		e.Update(dt)
	}
	updateDone := time.Now()

	m.stats.ticks++
	m.stats.groupSweep.record(groupsDone.Sub(start))
	m.stats.entitySweep.record(entitiesDone.Sub(groupsDone))
	m.stats.update.record(updateDone.Sub(entitiesDone))
}

// Render forwards the target to every entity currently in the managed
// sequence, in sequence order. No liveness filtering happens here beyond what
// the preceding Update already swept out.
func (m *Manager) Render(target RenderTarget) {
	start := time.Now()
	for _, e := range m.entities {
		e.Render(target)
	}
	m.stats.renders++
	m.stats.render.record(time.Since(start))
}

func (m *Manager) sweepGroups() {
	for g := range m.groups {
		index := m.groups[g]
		kept := index[:0]
		for _, e := range index {
			if e.alive && e.groups.has(uint8(g)) {
				kept = append(kept, e)
			}
		}
		// Clear trailing slots so dropped entities become collectable.
		for i := len(kept); i < len(index); i++ {
			index[i] = nil
		}
		m.groups[g] = kept
	}
}

func (m *Manager) sweepEntities() {
	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.alive {
			kept = append(kept, e)
			continue
		}
		m.invalidateRef(e.id)
		m.stats.destroyed++
	}
	for i := len(kept); i < len(m.entities); i++ {
		m.entities[i] = nil
	}
	m.entities = kept
}
