package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// DrawCommand is one quad to draw this frame.
type DrawCommand struct {
	Entity  uint32
	Model   string
	Texture string
	Matrix  mgl32.Mat4
	Color   mgl32.Vec3
	Opacity float32
	Depth   float32
}

// Target receives draw commands. BeginFrame/EndFrame bracket one frame.
type Target interface {
	BeginFrame()
	Submit(cmd DrawCommand)
	EndFrame()
}

// Recorder is a headless Target: it keeps the commands of the last frame
// and logs a summary per frame at debug level.
type Recorder struct {
	frame  []DrawCommand
	last   []DrawCommand
	frames uint64
	log    *zap.Logger
}

func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{
		frame: make([]DrawCommand, 0, 64),
		log:   log,
	}
}

func (r *Recorder) BeginFrame() {
	r.frame = r.frame[:0]
}

func (r *Recorder) Submit(cmd DrawCommand) {
	r.frame = append(r.frame, cmd)
}

func (r *Recorder) EndFrame() {
	r.last = append(r.last[:0], r.frame...)
	r.frames++
	r.log.Debug("frame drawn",
		zap.Uint64("frame", r.frames),
		zap.Int("draws", len(r.last)),
	)
}

// Last returns the commands of the most recently finished frame.
func (r *Recorder) Last() []DrawCommand { return r.last }

// Frames returns the number of finished frames.
func (r *Recorder) Frames() uint64 { return r.frames }
