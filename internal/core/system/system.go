package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput      Phase = iota // 0: poll window, publish input events
	PhasePreUpdate               // 1: react to last frame's events
	PhaseUpdate                  // 2: game logic
	PhasePostUpdate              // 3: derived state (colours, scripts)
	PhaseRender                  // 4: build + submit draw commands
	PhaseCleanup                 // 5: destroy queued entities
)

var phaseNames = [...]string{"input", "pre_update", "update", "post_update", "render", "cleanup"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Updater is anything the Runner drives once per frame.
type Updater interface {
	Phase() Phase
	Update(dt time.Duration)
}
