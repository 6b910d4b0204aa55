package system

import (
	"sort"
	"time"

	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
	coresys "github.com/quadgo/engine/internal/core/system"
	"github.com/quadgo/engine/internal/render"
)

// RenderSystem turns every {Transform, Renderable} entity into a draw
// command, back to front by depth. Phase 4 (Render).
//
// It only reads components.
type RenderSystem struct {
	ecs.EntitySet

	world  *ecs.World
	target render.Target
	cmds   []render.DrawCommand
}

func NewRenderSystem(w *ecs.World, target render.Target) (*RenderSystem, error) {
	s := &RenderSystem{world: w, target: target}
	if _, err := register(w, s, require[component.Transform], require[component.Renderable]); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RenderSystem) Phase() coresys.Phase { return coresys.PhaseRender }

func (s *RenderSystem) Update(_ time.Duration) {
	s.cmds = s.cmds[:0]
	for _, e := range s.Entities() {
		tr, err := ecs.GetComponent[component.Transform](s.world, e)
		if err != nil {
			continue
		}
		r, err := ecs.GetComponent[component.Renderable](s.world, e)
		if err != nil {
			continue
		}
		s.cmds = append(s.cmds, render.DrawCommand{
			Entity:  uint32(e),
			Model:   r.Model,
			Texture: r.Texture,
			Matrix:  tr.ModelMatrix(),
			Color:   r.Color,
			Opacity: r.Opacity,
			Depth:   tr.Position.Z(),
		})
	}
	// Member order is arbitrary; draw farther quads first, ties by entity id.
	sort.Slice(s.cmds, func(i, j int) bool {
		if s.cmds[i].Depth != s.cmds[j].Depth {
			return s.cmds[i].Depth > s.cmds[j].Depth
		}
		return s.cmds[i].Entity < s.cmds[j].Entity
	})

	s.target.BeginFrame()
	for _, c := range s.cmds {
		s.target.Submit(c)
	}
	s.target.EndFrame()
}
