package ecs

import (
	"reflect"
	"strconv"
)

// EntityID uniquely identifies an entity within its Manager. IDs are assigned
// monotonically starting at 1; 0 marks an invalidated reference.
type EntityID uint64

// Entity is a composite game object identified by the components attached to
// it. Entities are created through Manager.Spawn and exclusively owned by
// their Manager; user code only ever holds non-owning references.
type Entity struct {
	id      EntityID
	manager *Manager
	alive   bool

	components []Component
	byType     [MaxComponentTypes]Component
	caps       mask
	groups     mask
}

// ID returns the entity's manager-assigned identifier.
func (e *Entity) ID() EntityID { return e.id }

// Alive reports whether the entity has not been marked dead. A dead entity
// stays physically present in the manager's containers until the next sweep,
// so Alive must be re-checked on any reference held across an Update.
func (e *Entity) Alive() bool { return e.alive }

// MarkDead flags the entity for removal during the manager's next sweep. The
// transition is one-way and idempotent; the entity and its group registrations
// are not touched until the sweep runs.
func (e *Entity) MarkDead() { e.alive = false }

// Has reports whether a component of the given kind is attached. O(1) bit test.
func (e *Entity) Has(id ComponentTypeID) bool {
	return e.caps.has(uint8(id))
}

// Add attaches a component to the entity: the owner back-reference is set, the
// component is appended to the insertion-ordered sequence, recorded in the
// typed lookup table, and its capability bit is set, after which OnAttach
// fires. Components are never replaced or reordered once added; the returned
// reference stays valid for the entity's remaining lifetime.
//
// Attaching a second component of a kind already present is a wiring error and
// panics.
func (e *Entity) Add(c Component) Component {
	id := e.manager.registry.IDFor(reflect.TypeOf(c))
	if e.caps.has(uint8(id)) {
		panic("ecs: duplicate capability " + reflect.TypeOf(c).String() + " on entity " + strconv.FormatUint(uint64(e.id), 10))
	}

	c.setOwner(e)
	e.components = append(e.components, c)
	e.byType[id] = c
	e.caps.set(uint8(id))
	c.OnAttach()
	return c
}

// Component returns the attached component of the given kind. Fetching a kind
// that is not attached is a wiring error and panics. O(1) table lookup.
func (e *Entity) Component(id ComponentTypeID) Component {
	if !e.caps.has(uint8(id)) {
		panic("ecs: capability absent (type id " + strconv.Itoa(int(id)) + ") on entity " + strconv.FormatUint(uint64(e.id), 10))
	}
	return e.byType[id]
}

// Components returns the entity's components in insertion order. The slice is
// a view owned by the entity; callers must not mutate it.
func (e *Entity) Components() []Component {
	return e.components
}

// Update forwards dt to every component's OnUpdate, in insertion order.
func (e *Entity) Update(dt float64) {
	for _, c := range e.components {
		c.OnUpdate(dt)
	}
}

// Render forwards the target to every component's OnRender, in insertion order.
func (e *Entity) Render(target RenderTarget) {
	for _, c := range e.components {
		c.OnRender(target)
	}
}

// JoinGroup tags the entity as a member of group g and registers it in the
// manager's index for that group.
//
// Joining a group twice without an intervening sweep duplicates the index
// entry, as does a leave/join pair within one frame; the index is reconciled
// against the membership bit only during the sweep.
func (e *Entity) JoinGroup(g GroupID) {
	if int(g) >= MaxGroups {
		panic("ecs: group id " + strconv.Itoa(int(g)) + " out of range [0," + strconv.Itoa(MaxGroups) + ")")
	}
	e.groups.set(uint8(g))
	e.manager.registerInGroup(e, g)
}

// LeaveGroup clears the membership bit for group g. The entity's entry in the
// group index goes stale and is purged by the manager's next sweep rather than
// removed here.
func (e *Entity) LeaveGroup(g GroupID) {
	if int(g) >= MaxGroups {
		return
	}
	e.groups.unset(uint8(g))
}

// InGroup reports whether the membership bit for group g is set.
func (e *Entity) InGroup(g GroupID) bool {
	return int(g) < MaxGroups && e.groups.has(uint8(g))
}

// Attach attaches c to e and returns it with its concrete type, so call sites
// keep a typed reference without asserting.
func Attach[T Component](e *Entity, c T) T {
	e.Add(c)
	return c
}

// Get returns the attached component of kind T. Panics if T is not attached.
func Get[T Component](e *Entity) T {
	return e.Component(TypeID[T](e.manager.registry)).(T)
}

// Has reports whether a component of kind T is attached to e.
func Has[T Component](e *Entity) bool {
	return e.Has(TypeID[T](e.manager.registry))
}
