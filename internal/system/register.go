package system

import (
	"fmt"

	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
)

// RegisterComponents registers every component type the game systems use.
func RegisterComponents(w *ecs.World) error {
	for _, reg := range []func(*ecs.World) (ecs.ComponentType, error){
		ecs.RegisterComponent[component.Transform],
		ecs.RegisterComponent[component.Renderable],
		ecs.RegisterComponent[component.Patrol],
		ecs.RegisterComponent[component.ColorCycle],
		ecs.RegisterComponent[component.Script],
	} {
		if _, err := reg(w); err != nil {
			return err
		}
	}
	return nil
}

// require adds T's type to sig.
func require[T any](w *ecs.World, sig *ecs.Signature) error {
	t, err := ecs.ComponentTypeOf[T](w)
	if err != nil {
		return err
	}
	*sig = sig.Set(t)
	return nil
}

// register adds s to the world and sets its signature from the given
// requirement funcs.
func register[S ecs.System](w *ecs.World, s S, reqs ...func(*ecs.World, *ecs.Signature) error) (S, error) {
	var sig ecs.Signature
	for _, req := range reqs {
		if err := req(w, &sig); err != nil {
			return s, fmt.Errorf("signature of %T: %w", s, err)
		}
	}
	if _, err := ecs.RegisterSystem(w, s); err != nil {
		return s, err
	}
	if err := ecs.SetSystemSignature[S](w, sig); err != nil {
		return s, err
	}
	return s, nil
}
