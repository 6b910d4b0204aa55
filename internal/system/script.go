package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
	coresys "github.com/quadgo/engine/internal/core/system"
	"github.com/quadgo/engine/internal/scripting"
	"go.uber.org/zap"
)

// ScriptSystem hands each {Transform, Script} entity's transform to its Lua
// function every frame and applies what the script returns.
// Phase 3 (PostUpdate).
type ScriptSystem struct {
	ecs.EntitySet

	world  *ecs.World
	lua    *scripting.Engine
	failed map[string]bool // functions already reported as broken
}

func NewScriptSystem(w *ecs.World, lua *scripting.Engine) (*ScriptSystem, error) {
	s := &ScriptSystem{world: w, lua: lua, failed: make(map[string]bool)}
	if _, err := register(w, s, require[component.Transform], require[component.Script]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ScriptSystem) Update(dt time.Duration) {
	for _, e := range s.Entities() {
		tr, err := ecs.GetComponent[component.Transform](s.world, e)
		if err != nil {
			continue
		}
		sc, err := ecs.GetComponent[component.Script](s.world, e)
		if err != nil {
			continue
		}
		out, err := s.lua.UpdateTransform(sc.Func, scripting.TransformState{
			Entity:   uint32(e),
			X:        float64(tr.Position.X()),
			Y:        float64(tr.Position.Y()),
			Rotation: float64(tr.Rotation),
			ScaleX:   float64(tr.Scale.X()),
			ScaleY:   float64(tr.Scale.Y()),
		}, dt.Seconds())
		if err != nil {
			if !s.failed[sc.Func] {
				s.failed[sc.Func] = true
				s.world.Log().Warn("entity script failed",
					zap.Uint32("entity", uint32(e)),
					zap.String("func", sc.Func),
					zap.Error(err),
				)
			}
			continue
		}
		tr.SetPosition(float32(out.X), float32(out.Y))
		tr.SetRotation(float32(out.Rotation))
		tr.SetScale(mgl32.Vec2{float32(out.ScaleX), float32(out.ScaleY)})
	}
}
