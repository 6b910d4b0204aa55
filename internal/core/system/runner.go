package system

import (
	"sort"
	"time"
)

// Runner executes updaters in phase order each frame. Updaters in the same
// phase run in registration order.
type Runner struct {
	updaters []Updater
	sorted   bool
	frames   uint64
}

func NewRunner() *Runner {
	return &Runner{
		updaters: make([]Updater, 0, 16),
	}
}

func (r *Runner) Register(u Updater) {
	r.updaters = append(r.updaters, u)
	r.sorted = false
}

// Len returns the number of registered updaters.
func (r *Runner) Len() int { return len(r.updaters) }

// Frames returns how many times Tick has run.
func (r *Runner) Frames() uint64 { return r.frames }

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, u := range r.updaters {
		u.Update(dt)
	}
	r.frames++
}

// TickPhase runs only the updaters of one phase. It does not count as a frame.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, u := range r.updaters {
		if u.Phase() == phase {
			u.Update(dt)
		}
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.updaters, func(i, j int) bool {
			return r.updaters[i].Phase() < r.updaters[j].Phase()
		})
		r.sorted = true
	}
}
