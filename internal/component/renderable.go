package component

import "github.com/go-gl/mathgl/mgl32"

// Renderable names the mesh and texture an entity is drawn with.
// Pure data: the render collaborator resolves the names.
type Renderable struct {
	Model   string
	Texture string
	Color   mgl32.Vec3
	Opacity float32
}
