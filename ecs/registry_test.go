package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hollowpine/kitbash/ecs"
	"github.com/stretchr/testify/assert"
)

func TestIDForIsIdempotent(t *testing.T) {
	registry := ecs.NewTypeRegistry()

	first := ecs.TypeID[*Counter](registry)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ecs.TypeID[*Counter](registry))
	}
	assert.Equal(t, 1, registry.Registered())
}

func TestIDForDistinctKinds(t *testing.T) {
	registry := ecs.NewTypeRegistry()

	a := ecs.TypeID[*Counter](registry)
	b := ecs.TypeID[*Lifetime](registry)
	c := ecs.TypeID[*Named](registry)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 3, registry.Registered())

	// IDs are handed out monotonically from zero.
	assert.Equal(t, ecs.ComponentTypeID(0), a)
	assert.Equal(t, ecs.ComponentTypeID(1), b)
	assert.Equal(t, ecs.ComponentTypeID(2), c)
}

func TestIDForPointerAndValueShareKind(t *testing.T) {
	registry := ecs.NewTypeRegistry()

	byPtr := registry.IDFor(reflect.TypeOf(&Counter{}))
	byValue := registry.IDFor(reflect.TypeOf(Counter{}))

	assert.Equal(t, byPtr, byValue)
	assert.Equal(t, 1, registry.Registered())
}

func TestRegistryCapacity(t *testing.T) {
	registry := ecs.NewTypeRegistry()

	// Distinct array types stand in for distinct component kinds.
	byteType := reflect.TypeOf(byte(0))
	ids := make(map[ecs.ComponentTypeID]bool)
	for i := 0; i < ecs.MaxComponentTypes; i++ {
		id := registry.IDFor(reflect.ArrayOf(i+1, byteType))
		assert.False(t, ids[id], fmt.Sprintf("id %d assigned twice", id))
		assert.Less(t, int(id), ecs.MaxComponentTypes)
		ids[id] = true
	}
	assert.Equal(t, ecs.MaxComponentTypes, registry.Registered())

	assert.Panics(t, func() {
		registry.IDFor(reflect.ArrayOf(ecs.MaxComponentTypes+1, byteType))
	})
}

func TestRegistriesAreIndependent(t *testing.T) {
	first := ecs.NewTypeRegistry()
	second := ecs.NewTypeRegistry()

	ecs.TypeID[*Named](first)
	ecs.TypeID[*Counter](first)

	// A fresh registry starts its counter over.
	assert.Equal(t, ecs.ComponentTypeID(0), ecs.TypeID[*Counter](second))
}
