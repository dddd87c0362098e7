package ecs

import "time"

// ManagerStats is a snapshot of a Manager's tick statistics.
type ManagerStats struct {
	Ticks       int64
	Renders     int64
	EntityCount int
	Destroyed   int64
	GroupSizes  [MaxGroups]int

	GroupSweep  PhaseStats
	EntitySweep PhaseStats
	Update      PhaseStats
	Render      PhaseStats
}

// PhaseStats provides execution statistics for one phase of the frame cycle.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (p *phaseStatsInternal) record(d time.Duration) {
	p.executionCount++
	p.lastDuration = d
	p.totalDuration += d
	if p.executionCount == 1 || d < p.minDuration {
		p.minDuration = d
	}
	if d > p.maxDuration {
		p.maxDuration = d
	}
}

func (p *phaseStatsInternal) snapshot(name string) PhaseStats {
	avg := time.Duration(0)
	if p.executionCount > 0 {
		avg = p.totalDuration / time.Duration(p.executionCount)
	}
	return PhaseStats{
		Name:           name,
		ExecutionCount: p.executionCount,
		MinDuration:    p.minDuration,
		MaxDuration:    p.maxDuration,
		AvgDuration:    avg,
		LastDuration:   p.lastDuration,
		TotalDuration:  p.totalDuration,
	}
}

type managerStatsInternal struct {
	ticks     int64
	renders   int64
	destroyed int64

	groupSweep  phaseStatsInternal
	entitySweep phaseStatsInternal
	update      phaseStatsInternal
	render      phaseStatsInternal
}

// Stats returns a snapshot of the manager's tick statistics.
func (m *Manager) Stats() *ManagerStats {
	stats := &ManagerStats{
		Ticks:       m.stats.ticks,
		Renders:     m.stats.renders,
		EntityCount: len(m.entities),
		Destroyed:   m.stats.destroyed,
		GroupSweep:  m.stats.groupSweep.snapshot("group-sweep"),
		EntitySweep: m.stats.entitySweep.snapshot("entity-sweep"),
		Update:      m.stats.update.snapshot("update"),
		Render:      m.stats.render.snapshot("render"),
	}
	for g := range m.groups {
		stats.GroupSizes[g] = len(m.groups[g])
	}
	return stats
}

// Phases returns the per-phase statistics in frame order, for callers that
// want to iterate them generically (the debug UI does).
func (s *ManagerStats) Phases() []PhaseStats {
	return []PhaseStats{s.GroupSweep, s.EntitySweep, s.Update, s.Render}
}
