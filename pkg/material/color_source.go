package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for surface-mapped textures, point for solid procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two color sources in a 3D sine pattern
type Checker struct {
	Even, Odd ColorSource
	Frequency float64 // checks per unit length times pi
}

// NewChecker creates a checker of two solid colors
func NewChecker(frequency float64, even, odd core.Vec3) *Checker {
	return &Checker{Even: NewSolidColor(even), Odd: NewSolidColor(odd), Frequency: frequency}
}

// Evaluate picks a source from the sign of sin(fx)·sin(fy)·sin(fz)
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	f := c.Frequency
	sines := math.Sin(f*point.X) * math.Sin(f*point.Y) * math.Sin(f*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
