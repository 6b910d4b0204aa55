package component

import "github.com/go-gl/mathgl/mgl32"

// Transform places a quad in screen space. Position.Z is the draw depth.
// Mutate through the methods so the cached model matrix is invalidated.
type Transform struct {
	Position mgl32.Vec3
	Rotation float32 // radians around Z
	Scale    mgl32.Vec2

	clean bool
	model mgl32.Mat4
}

func NewTransform(pos mgl32.Vec3, scale mgl32.Vec2) Transform {
	return Transform{Position: pos, Scale: scale}
}

func (t *Transform) TranslateX(d float32) {
	t.Position[0] += d
	t.clean = false
}

func (t *Transform) TranslateY(d float32) {
	t.Position[1] += d
	t.clean = false
}

// SetPosition moves the transform to x,y keeping its depth.
func (t *Transform) SetPosition(x, y float32) {
	t.Position[0], t.Position[1] = x, y
	t.clean = false
}

func (t *Transform) SetScale(s mgl32.Vec2) {
	t.Scale = s
	t.clean = false
}

func (t *Transform) SetDepth(z float32) {
	t.Position[2] = z
	t.clean = false
}

func (t *Transform) SetRotation(r float32) {
	t.Rotation = r
	t.clean = false
}

func (t *Transform) Rotate(r float32) {
	t.Rotation += r
	t.clean = false
}

// ModelMatrix returns translate * rotateZ * scale, recomputed only after a change.
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	if !t.clean {
		t.model = mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
			Mul4(mgl32.HomogRotate3DZ(t.Rotation)).
			Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), 1))
		t.clean = true
	}
	return t.model
}
