package system

import (
	"testing"
	"time"
)

type recordUpdater struct {
	name  string
	phase Phase
	log   *[]string
	dt    time.Duration
}

func (u *recordUpdater) Phase() Phase { return u.phase }

func (u *recordUpdater) Update(dt time.Duration) {
	u.dt = dt
	*u.log = append(*u.log, u.name)
}

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordUpdater{name: "render", phase: PhaseRender, log: &log})
	r.Register(&recordUpdater{name: "move", phase: PhaseUpdate, log: &log})
	r.Register(&recordUpdater{name: "input", phase: PhaseInput, log: &log})
	r.Register(&recordUpdater{name: "move2", phase: PhaseUpdate, log: &log})
	r.Register(&recordUpdater{name: "cleanup", phase: PhaseCleanup, log: &log})
	r.Register(&recordUpdater{name: "move3", phase: PhaseUpdate, log: &log})

	r.Tick(16 * time.Millisecond)

	want := []string{"input", "move", "move2", "move3", "render", "cleanup"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if r.Frames() != 1 || r.Len() != 6 {
		t.Errorf("frames=%d len=%d", r.Frames(), r.Len())
	}
}

func TestRunnerRegisterAfterTick(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recordUpdater{name: "a", phase: PhaseUpdate, log: &log})
	r.Tick(time.Millisecond)

	r.Register(&recordUpdater{name: "b", phase: PhaseUpdate, log: &log})
	r.Register(&recordUpdater{name: "in", phase: PhaseInput, log: &log})
	log = log[:0]
	r.Tick(time.Millisecond)

	want := []string{"in", "a", "b"}
	for i := range want {
		if i >= len(log) || log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	in := &recordUpdater{name: "input", phase: PhaseInput, log: &log}
	r.Register(in)
	r.Register(&recordUpdater{name: "move", phase: PhaseUpdate, log: &log})

	r.TickPhase(PhaseInput, 5*time.Millisecond)
	if len(log) != 1 || log[0] != "input" {
		t.Errorf("log = %v", log)
	}
	if in.dt != 5*time.Millisecond {
		t.Errorf("dt = %s", in.dt)
	}
	if r.Frames() != 0 {
		t.Errorf("TickPhase counted as frame")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRender.String() != "render" || Phase(42).String() != "unknown" {
		t.Error("Phase.String wrong")
	}
}
