package ecs

import (
	"reflect"
	"strconv"
	"unsafe"

	"github.com/kamstrup/intmap"
)

const (
	// MaxComponentTypes is the number of distinct component kinds a registry
	// can hand out IDs for.
	MaxComponentTypes = 32

	// MaxGroups is the number of distinct groups entities can be tagged with.
	MaxGroups = 32
)

// ComponentTypeID identifies a registered component kind. IDs are assigned
// lazily and monotonically, starting at 0, and are stable for the lifetime of
// the registry that assigned them.
type ComponentTypeID uint8

// GroupID identifies one of the MaxGroups entity groups.
type GroupID uint8

// TypeRegistry assigns a stable ComponentTypeID to each distinct component
// kind on first use. Construct one per Manager with NewTypeRegistry; there is
// no process-global registry.
//
// A TypeRegistry is not safe for concurrent use. It is meant to be called only
// from the frame-processing goroutine.
type TypeRegistry struct {
	ids  *intmap.Map[int, ComponentTypeID]
	next ComponentTypeID
}

// NewTypeRegistry creates an empty component type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		ids: intmap.New[int, ComponentTypeID](MaxComponentTypes),
	}
}

// IDFor returns the ComponentTypeID for the given component type, assigning
// the next unused ID on first sight. Pointer types are dereferenced, so
// *Counter and Counter name the same kind. Requesting a 33rd distinct kind is
// a wiring error and panics.
func (r *TypeRegistry) IDFor(t reflect.Type) ComponentTypeID {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	key := typeKey(t)
	if id, ok := r.ids.Get(key); ok {
		return id
	}

	if int(r.next) >= MaxComponentTypes {
		panic("ecs: component type registry full (" + strconv.Itoa(MaxComponentTypes) + " kinds), cannot register " + t.String())
	}

	id := r.next
	r.next++
	r.ids.Put(key, id)
	return id
}

// TypeID returns the ComponentTypeID for the component kind T.
func TypeID[T Component](r *TypeRegistry) ComponentTypeID {
	return r.IDFor(reflect.TypeFor[T]())
}

// Registered returns how many distinct component kinds have been assigned IDs.
func (r *TypeRegistry) Registered() int {
	return int(r.next)
}

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeKey returns a per-process unique integer for a reflect.Type, using the
// type's interface data pointer as its identity.
func typeKey(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}
