// Command ecs-stress churns entities through a Manager's tick cycle and
// reports tick latency and memory behavior.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/hollowpine/kitbash/ecs"
)

const (
	groupDrifters = ecs.GroupID(0)
	groupShortLiv = ecs.GroupID(1)
)

// Drift wanders a point around, standing in for movement-style work.
type Drift struct {
	ecs.BaseComponent
	X, Y   float64
	VX, VY float64
}

func (d *Drift) OnUpdate(dt float64) {
	d.X += d.VX * dt
	d.Y += d.VY * dt
}

// Lifespan marks the entity dead after TTL seconds.
type Lifespan struct {
	ecs.BaseComponent
	TTL float64

	age float64
}

func (l *Lifespan) OnUpdate(dt float64) {
	l.age += dt
	if l.age >= l.TTL {
		l.Owner().MarkDead()
	}
}

// Tally counts updates, standing in for bookkeeping-style work.
type Tally struct {
	ecs.BaseComponent
	Updates int64
}

func (t *Tally) OnUpdate(dt float64) {
	t.Updates++
}

func spawnWave(m *ecs.Manager, n int) {
	for i := 0; i < n; i++ {
		e := m.Spawn()
		ecs.Attach(e, &Drift{
			X:  rand.Float64() * 1000,
			Y:  rand.Float64() * 1000,
			VX: rand.Float64()*20 - 10,
			VY: rand.Float64()*20 - 10,
		})
		ecs.Attach(e, &Tally{})
		e.JoinGroup(groupDrifters)

		// Half the population is short-lived to keep the sweep busy.
		if i%2 == 0 {
			ecs.Attach(e, &Lifespan{TTL: 0.5 + rand.Float64()*2})
			e.JoinGroup(groupShortLiv)
		}
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	waveSize := flag.Int("wave", 500, "Entities respawned each tick to replace swept ones.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	registry := ecs.NewTypeRegistry()
	manager := ecs.NewManager(registry)

	log.Printf("Populating manager with %d entities...\n", *entityCount)
	spawnWave(manager, *entityCount)
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		WaveSize:       *waveSize,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			tickStart := time.Now()
			manager.Update(deltaTime.Seconds())
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++

			// Backfill what the sweep took out.
			if deficit := *entityCount - manager.EntityCount(); deficit > 0 {
				n := deficit
				if n > *waveSize {
					n = *waveSize
				}
				spawnWave(manager, n)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.FinalEntities = manager.EntityCount()
	report.Destroyed = manager.Stats().Destroyed
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
