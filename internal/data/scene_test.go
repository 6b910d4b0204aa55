package data

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/quadgo/engine/internal/component"
	"github.com/quadgo/engine/internal/core/ecs"
	"go.uber.org/zap"
)

const testScene = `
entities:
  - name: walker
    transform: { x: 100, y: 200, depth: 0.5, scale: [50, 60] }
    renderable: { model: quad, texture: white, color: [0.25, 0.5, 0.75] }
    patrol: { direction: left }
    color_cycle: { to: [1, 0, 0] }
  - name: spinner
    transform: { x: 10, y: 10, scale: [5, 5] }
    script: { func: spin }
  - name: empty
`

func newSceneWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld(zap.NewNop(), ecs.WithMaxEntities(16))
	for _, reg := range []func(*ecs.World) (ecs.ComponentType, error){
		ecs.RegisterComponent[component.Transform],
		ecs.RegisterComponent[component.Renderable],
		ecs.RegisterComponent[component.Patrol],
		ecs.RegisterComponent[component.ColorCycle],
		ecs.RegisterComponent[component.Script],
	} {
		if _, err := reg(w); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func TestSpawnScene(t *testing.T) {
	s, err := ParseScene([]byte(testScene))
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	if s.Count() != 3 {
		t.Fatalf("count = %d, want 3", s.Count())
	}

	w := newSceneWorld(t)
	ids, err := s.Spawn(w)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if len(ids) != 3 || w.Living() != 3 {
		t.Fatalf("spawned %d, living %d", len(ids), w.Living())
	}

	tr, err := ecs.GetComponent[component.Transform](w, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if tr.Position != (mgl32.Vec3{100, 200, 0.5}) || tr.Scale != (mgl32.Vec2{50, 60}) {
		t.Errorf("transform = %+v", tr)
	}
	r, err := ecs.GetComponent[component.Renderable](w, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if r.Opacity != 1 || r.Model != "quad" {
		t.Errorf("renderable = %+v", r)
	}
	p, err := ecs.GetComponent[component.Patrol](w, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if p.Direction != component.DirLeft || p.Speed != defaultPatrolSpeed {
		t.Errorf("patrol = %+v", p)
	}
	c, err := ecs.GetComponent[component.ColorCycle](w, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if c.Period != defaultCyclePeriod || c.From != (mgl32.Vec3{0.25, 0.5, 0.75}) {
		t.Errorf("color cycle = %+v", c)
	}

	sc, err := ecs.GetComponent[component.Script](w, ids[1])
	if err != nil {
		t.Fatal(err)
	}
	if sc.Func != "spin" {
		t.Errorf("script = %q", sc.Func)
	}
	if ecs.HasComponent[component.Renderable](w, ids[1]) {
		t.Error("spinner should have no renderable")
	}

	sig, err := w.SignatureOf(ids[2])
	if err != nil {
		t.Fatal(err)
	}
	if !sig.Empty() {
		t.Errorf("empty entity signature = %s", sig)
	}
}

func TestParseSceneRejectsBadEntries(t *testing.T) {
	for _, body := range []string{
		"entities:\n  - patrol: { direction: sideways }\n",
		"entities:\n  - script: {}\n",
		"entities: [\n",
	} {
		if _, err := ParseScene([]byte(body)); err == nil {
			t.Errorf("expected error for %q", body)
		}
	}
}

func TestSpawnRollsBackOnError(t *testing.T) {
	s, err := ParseScene([]byte(testScene))
	if err != nil {
		t.Fatal(err)
	}
	// Only Transform registered: the first entity's renderable fails.
	w := ecs.NewWorld(zap.NewNop(), ecs.WithMaxEntities(16))
	if _, err := ecs.RegisterComponent[component.Transform](w); err != nil {
		t.Fatal(err)
	}
	_, err = s.Spawn(w)
	if !errors.Is(err, ecs.ErrUnregisteredType) {
		t.Fatalf("err = %v, want ErrUnregisteredType", err)
	}
	if w.Living() != 0 {
		t.Errorf("living = %d, want 0 after rollback", w.Living())
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if s.Entities[1].Name != "spinner" {
		t.Errorf("entity 1 = %q", s.Entities[1].Name)
	}
	if _, err := LoadScene(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
