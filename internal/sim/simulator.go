package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/banshee-data/lidar-sim/internal/lidar"
)

// Plugin is one behaviour run against the World every frame.
type Plugin interface {
	Process(w *World) error
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(w *World) error

// Process calls f(w).
func (f PluginFunc) Process(w *World) error { return f(w) }

// Simulator runs its plugins in order, once per Step.
type Simulator struct {
	world   *World
	plugins []Plugin
}

// NewSimulator builds a simulator over world. The plugin list is fixed for
// the simulator's lifetime.
func NewSimulator(world *World, plugins ...Plugin) *Simulator {
	ps := make([]Plugin, len(plugins))
	copy(ps, plugins)
	return &Simulator{world: world, plugins: ps}
}

// World returns the simulated world.
func (s *Simulator) World() *World { return s.world }

// Step runs every plugin once. It stops at the first plugin error.
func (s *Simulator) Step() error {
	for i, p := range s.plugins {
		if err := p.Process(s.world); err != nil {
			return fmt.Errorf("frame %d: plugin %d (%T): %w", s.world.Frame, i, p, err)
		}
	}
	s.world.Frame++
	return nil
}

// Run steps the simulator frames times, waiting interval between frames
// when interval is positive. It returns early on ctx cancellation.
func (s *Simulator) Run(ctx context.Context, frames int, interval time.Duration) error {
	var tick *time.Ticker
	if interval > 0 {
		tick = time.NewTicker(interval)
		defer tick.Stop()
	}
	lidar.Opsf("simulator: running %d frames (interval %v, %d plugins)", frames, interval, len(s.plugins))
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
		if tick != nil && i < frames-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick.C:
			}
		}
	}
	return nil
}

// Throttled runs an inner plugin on the first of every n frames.
type Throttled struct {
	n     int
	i     int
	inner Plugin
}

// Throttle wraps p so it only runs every n-th call. n below 1 is treated
// as 1.
func Throttle(n int, p Plugin) *Throttled {
	if n < 1 {
		n = 1
	}
	return &Throttled{n: n, inner: p}
}

// Process runs the inner plugin when the call counter wraps to zero.
func (t *Throttled) Process(w *World) error {
	run := t.i == 0
	t.i = (t.i + 1) % t.n
	if !run {
		return nil
	}
	return t.inner.Process(w)
}
