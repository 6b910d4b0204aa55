package data

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
	"gopkg.in/yaml.v3"
)

type TransformEntry struct {
	X        float32    `yaml:"x"`
	Y        float32    `yaml:"y"`
	Depth    float32    `yaml:"depth"`
	Rotation float32    `yaml:"rotation"`
	Scale    [2]float32 `yaml:"scale"`
}

type RenderableEntry struct {
	Model   string     `yaml:"model"`
	Texture string     `yaml:"texture"`
	Color   [3]float32 `yaml:"color"`
	Opacity *float32   `yaml:"opacity"` // nil = 1
}

type PatrolEntry struct {
	Direction string  `yaml:"direction"`
	Speed     float32 `yaml:"speed"`
}

type ColorCycleEntry struct {
	Period float32    `yaml:"period"`
	To     [3]float32 `yaml:"to"`
}

type ScriptEntry struct {
	Func string `yaml:"func"`
}

// EntityEntry is one spawned entity; every section is optional.
type EntityEntry struct {
	Name       string           `yaml:"name"`
	Transform  *TransformEntry  `yaml:"transform"`
	Renderable *RenderableEntry `yaml:"renderable"`
	Patrol     *PatrolEntry     `yaml:"patrol"`
	ColorCycle *ColorCycleEntry `yaml:"color_cycle"`
	Script     *ScriptEntry     `yaml:"script"`
}

// Scene is the initial set of entities loaded from scene.yaml.
type Scene struct {
	Entities []EntityEntry `yaml:"entities"`
}

const (
	defaultPatrolSpeed = 500
	defaultCyclePeriod = 0.5
)

// LoadScene loads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(raw)
}

func ParseScene(raw []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	for i, e := range s.Entities {
		if e.Patrol != nil && e.Patrol.Direction != "" {
			if _, ok := component.ParseDirection(e.Patrol.Direction); !ok {
				return nil, fmt.Errorf("scene entity %d (%s): unknown patrol direction %q", i, e.Name, e.Patrol.Direction)
			}
		}
		if e.Script != nil && e.Script.Func == "" {
			return nil, fmt.Errorf("scene entity %d (%s): script without func", i, e.Name)
		}
	}
	return &s, nil
}

// Count returns the number of entities in the scene.
func (s *Scene) Count() int {
	return len(s.Entities)
}

// Spawn creates one entity per entry and attaches its components. The
// component types used by the entry must be registered on w.
func (s *Scene) Spawn(w *ecs.World) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(s.Entities))
	for i := range s.Entities {
		e, err := spawnEntry(w, &s.Entities[i])
		if err != nil {
			return out, fmt.Errorf("spawn %q: %w", s.Entities[i].Name, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func spawnEntry(w *ecs.World, entry *EntityEntry) (ecs.Entity, error) {
	e, err := w.CreateEntity()
	if err != nil {
		return 0, err
	}
	if err := attach(w, e, entry); err != nil {
		// Leave no half-built entity behind.
		_ = w.DestroyEntity(e)
		return 0, err
	}
	return e, nil
}

func attach(w *ecs.World, e ecs.Entity, entry *EntityEntry) error {
	if t := entry.Transform; t != nil {
		tr := component.NewTransform(mgl32.Vec3{t.X, t.Y, t.Depth}, mgl32.Vec2(t.Scale))
		tr.Rotation = t.Rotation
		if err := ecs.AddComponent(w, e, tr); err != nil {
			return err
		}
	}
	if r := entry.Renderable; r != nil {
		opacity := float32(1)
		if r.Opacity != nil {
			opacity = *r.Opacity
		}
		if err := ecs.AddComponent(w, e, component.Renderable{
			Model:   r.Model,
			Texture: r.Texture,
			Color:   mgl32.Vec3(r.Color),
			Opacity: opacity,
		}); err != nil {
			return err
		}
	}
	if p := entry.Patrol; p != nil {
		dir, _ := component.ParseDirection(p.Direction)
		speed := p.Speed
		if speed == 0 {
			speed = defaultPatrolSpeed
		}
		if err := ecs.AddComponent(w, e, component.Patrol{Direction: dir, Speed: speed}); err != nil {
			return err
		}
	}
	if c := entry.ColorCycle; c != nil {
		period := c.Period
		if period <= 0 {
			period = defaultCyclePeriod
		}
		from := mgl32.Vec3{1, 1, 1}
		if entry.Renderable != nil {
			from = mgl32.Vec3(entry.Renderable.Color)
		}
		if err := ecs.AddComponent(w, e, component.ColorCycle{
			Period: period,
			From:   from,
			To:     mgl32.Vec3(c.To),
		}); err != nil {
			return err
		}
	}
	if sc := entry.Script; sc != nil {
		if err := ecs.AddComponent(w, e, component.Script{Func: sc.Func}); err != nil {
			return err
		}
	}
	return nil
}
