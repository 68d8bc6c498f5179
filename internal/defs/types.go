// internal/defs/types.go
package defs

import "image/color"

// Visuals holds the static drawing data for a definition.
type Visuals struct {
	Color     color.RGBA
	Radius    float64
	HasStroke bool
}

// SpawnWeight is one entry of a wave-tier spawn probability table.
type SpawnWeight struct {
	EnemyID string
	Weight  int
}
