package system

import (
	"time"

	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
	"github.com/quadgo/engine/internal/core/event"
	coresys "github.com/quadgo/engine/internal/core/system"
	"go.uber.org/zap"
)

// MovementSystem walks every {Transform, Patrol} entity around the inside
// edge of the window: up until the top edge, then left, down at the left
// edge, right at the bottom edge, up again at the right edge. Phase 2 (Update).
//
// The bounds follow WindowResize events.
type MovementSystem struct {
	ecs.EntitySet

	world  *ecs.World
	width  float32
	height float32
	sub    event.Subscription
}

func NewMovementSystem(w *ecs.World, width, height int) (*MovementSystem, error) {
	s := &MovementSystem{world: w, width: float32(width), height: float32(height)}
	if _, err := register(w, s, require[component.Transform], require[component.Patrol]); err != nil {
		return nil, err
	}
	s.sub = w.Bus().Subscribe(event.WindowResize, s.onResize)
	return s, nil
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

// Bounds returns the area entities patrol in.
func (s *MovementSystem) Bounds() (float32, float32) { return s.width, s.height }

func (s *MovementSystem) onResize(ev *event.Event) {
	w, errW := ev.Int(event.WindowResizeWidth)
	h, errH := ev.Int(event.WindowResizeHeight)
	if errW != nil || errH != nil {
		s.world.Log().Warn("malformed resize event", zap.NamedError("width", errW), zap.NamedError("height", errH))
		return
	}
	s.width, s.height = float32(w), float32(h)
}

func (s *MovementSystem) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	for _, e := range s.Entities() {
		tr, err := ecs.GetComponent[component.Transform](s.world, e)
		if err != nil {
			continue
		}
		p, err := ecs.GetComponent[component.Patrol](s.world, e)
		if err != nil {
			continue
		}
		s.move(tr, p, step*p.Speed)
	}
}

func (s *MovementSystem) move(tr *component.Transform, p *component.Patrol, d float32) {
	halfX, halfY := tr.Scale.X()/2, tr.Scale.Y()/2
	switch p.Direction {
	case component.DirUp:
		tr.TranslateY(d)
		if top := s.height - halfY; tr.Position.Y() >= top {
			tr.SetPosition(tr.Position.X(), top)
			p.Direction = component.DirLeft
		}
	case component.DirDown:
		tr.TranslateY(-d)
		if tr.Position.Y() <= halfY {
			tr.SetPosition(tr.Position.X(), halfY)
			p.Direction = component.DirRight
		}
	case component.DirLeft:
		tr.TranslateX(-d)
		if tr.Position.X() <= halfX {
			tr.SetPosition(halfX, tr.Position.Y())
			p.Direction = component.DirDown
		}
	case component.DirRight:
		tr.TranslateX(d)
		if right := s.width - halfX; tr.Position.X() >= right {
			tr.SetPosition(right, tr.Position.Y())
			p.Direction = component.DirUp
		}
	}
}

// Close drops the resize subscription.
func (s *MovementSystem) Close() {
	s.world.Bus().Unsubscribe(s.sub)
}
