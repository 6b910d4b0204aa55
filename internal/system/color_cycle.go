package system

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
	coresys "github.com/quadgo/engine/internal/core/system"
)

// ColorCycleSystem fades each {Renderable, ColorCycle} entity's colour
// towards a random target, picking a new target every period.
// Phase 3 (PostUpdate).
type ColorCycleSystem struct {
	ecs.EntitySet

	world *ecs.World
	rng   *rand.Rand
}

func NewColorCycleSystem(w *ecs.World, rng *rand.Rand) (*ColorCycleSystem, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &ColorCycleSystem{world: w, rng: rng}
	if _, err := register(w, s, require[component.Renderable], require[component.ColorCycle]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ColorCycleSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ColorCycleSystem) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	for _, e := range s.Entities() {
		r, err := ecs.GetComponent[component.Renderable](s.world, e)
		if err != nil {
			continue
		}
		c, err := ecs.GetComponent[component.ColorCycle](s.world, e)
		if err != nil {
			continue
		}
		s.step(r, c, step)
	}
}

func (s *ColorCycleSystem) step(r *component.Renderable, c *component.ColorCycle, dt float32) {
	c.Elapsed += dt
	if c.Elapsed >= c.Period {
		c.Elapsed = 0
		c.From = c.To
		c.To = mgl32.Vec3{s.rng.Float32(), s.rng.Float32(), s.rng.Float32()}
		return
	}
	t := c.Elapsed / c.Period
	r.Color = c.From.Mul(1 - t).Add(c.To.Mul(t))
}
