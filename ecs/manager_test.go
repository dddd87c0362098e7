package ecs_test

import (
	"fmt"
	"testing"

	"github.com/hollowpine/kitbash/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRemovesDeadEntity(t *testing.T) {
	m := newTestManager()
	e := m.Spawn()
	e.JoinGroup(1)
	e.JoinGroup(4)

	e.MarkDead()
	m.Update(0)

	assert.Equal(t, 0, m.EntityCount())
	assert.Empty(t, m.Group(1))
	assert.Empty(t, m.Group(4))
}

func TestCounterLifetimeScenario(t *testing.T) {
	m := newTestManager()
	e := m.Spawn()
	ecs.Attach(e, &Counter{})
	ecs.Attach(e, &Lifetime{Threshold: 3})

	m.Update(1.0)
	m.Update(1.0)
	assert.True(t, e.Alive())

	// Third tick brings the counter to 3.0; the lifetime component fires.
	m.Update(1.0)
	assert.False(t, e.Alive())
	assert.Equal(t, 1, m.EntityCount())

	// Fourth tick sweeps the carcass out.
	m.Update(1.0)
	assert.Equal(t, 0, m.EntityCount())
}

func TestGroupQueryCounts(t *testing.T) {
	const (
		groupA = ecs.GroupID(0)
		groupB = ecs.GroupID(7)
	)

	m := newTestManager()
	for i := 0; i < 5; i++ {
		m.Spawn().JoinGroup(groupA)
	}
	for i := 0; i < 3; i++ {
		m.Spawn().JoinGroup(groupB)
	}

	assert.Len(t, m.Group(groupA), 5)
	assert.Len(t, m.Group(groupB), 3)
	assert.Empty(t, m.Group(1))
}

func TestGroupViewGoesStaleUntilSweep(t *testing.T) {
	m := newTestManager()
	e := m.Spawn()
	e.JoinGroup(2)

	other := m.Spawn()
	other.JoinGroup(2)

	e.MarkDead()

	// Before the sweep the dead entity is still listed.
	view := m.Group(2)
	require.Len(t, view, 2)
	assert.False(t, view[0].Alive())

	m.Update(0)
	view = m.Group(2)
	require.Len(t, view, 1)
	assert.Same(t, other, view[0])
}

func TestLeaveGroupPurgedBySweep(t *testing.T) {
	m := newTestManager()
	e := m.Spawn()
	e.JoinGroup(6)

	e.LeaveGroup(6)
	// Lazy removal: the index entry survives until the sweep.
	assert.Len(t, m.Group(6), 1)

	m.Update(0)
	assert.Empty(t, m.Group(6))
	// The entity itself stays alive; only its membership ended.
	assert.Equal(t, 1, m.EntityCount())
	assert.True(t, e.Alive())
}

func TestRejoinWithinFrameDuplicatesIndexEntry(t *testing.T) {
	m := newTestManager()
	e := m.Spawn()
	e.JoinGroup(5)
	e.LeaveGroup(5)
	e.JoinGroup(5)

	// Both registrations are kept: the index is reconciled only at sweep
	// time, and the membership bit is set for both entries.
	assert.Len(t, m.Group(5), 2)

	m.Update(0)
	assert.Len(t, m.Group(5), 2)
}

func TestSpawnCountIndependentOfOrder(t *testing.T) {
	tests := []struct {
		a, b int
	}{
		{5, 3},
		{3, 5},
		{0, 8},
		{1, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("a=%d,b=%d", tt.a, tt.b), func(t *testing.T) {
			m := newTestManager()
			for i := 0; i < tt.a; i++ {
				m.Spawn().JoinGroup(0)
			}
			for i := 0; i < tt.b; i++ {
				m.Spawn().JoinGroup(1)
			}
			assert.Len(t, m.Group(0), tt.a)
			assert.Len(t, m.Group(1), tt.b)
		})
	}
}

func TestRenderVisitsEntitiesInSequenceOrder(t *testing.T) {
	m := newTestManager()

	first := m.Spawn()
	ecs.Attach(first, &Painter{Label: "first"})
	second := m.Spawn()
	ecs.Attach(second, &Painter{Label: "second"})
	ecs.Attach(second, &Named{Name: "no-op at render"})

	log := &paintLog{}
	m.Render(log)
	assert.Equal(t, []string{"first", "second"}, log.lines)
}

func TestRenderSkipsNothingBeforeSweep(t *testing.T) {
	m := newTestManager()
	e := m.Spawn()
	ecs.Attach(e, &Painter{Label: "doomed"})
	e.MarkDead()

	// Render does not filter by liveness; only Update's sweep removes.
	log := &paintLog{}
	m.Render(log)
	assert.Equal(t, []string{"doomed"}, log.lines)

	m.Update(0)
	log.lines = nil
	m.Render(log)
	assert.Empty(t, log.lines)
}

func TestDeadEntityExcludedFromUpdate(t *testing.T) {
	m := newTestManager()

	live := m.Spawn()
	liveCounter := ecs.Attach(live, &Counter{})

	dead := m.Spawn()
	deadCounter := ecs.Attach(dead, &Counter{})
	dead.MarkDead()

	m.Update(1.0)

	assert.Equal(t, 1.0, liveCounter.Value)
	// The dead entity was swept before the update phase ran.
	assert.Equal(t, 0.0, deadCounter.Value)
	assert.Equal(t, 1, m.EntityCount())
}

func TestManySpawnsAndDeaths(t *testing.T) {
	m := newTestManager()

	for wave := 0; wave < 10; wave++ {
		for i := 0; i < 50; i++ {
			e := m.Spawn()
			ecs.Attach(e, &Counter{})
			ecs.Attach(e, &Lifetime{Threshold: 2})
			e.JoinGroup(0)
		}
		m.Update(1.0)
	}

	// Ten waves went in; with spawning stopped, every remaining entity hits
	// its threshold and is swept within three more ticks.
	assert.Equal(t, 100, m.EntityCount())
	m.Update(1.0)
	m.Update(1.0)
	m.Update(1.0)
	assert.Equal(t, 0, m.EntityCount())
	assert.Empty(t, m.Group(0))
}
