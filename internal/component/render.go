// internal/component/render.go
package component

import "image/color"

// Renderable describes how an entity is drawn: a filled circle with an
// optional stroke. The renderer never feeds state back into the core.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
