package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// GradientBackground blends Bottom into Top by the ray's vertical direction
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewSkyGradient returns the white to light-blue sky
func NewSkyGradient() *GradientBackground {
	return &GradientBackground{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color maps unit direction y from [-1,1] to a blend factor in [0,1]
func (g *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(g.Bottom, g.Top, t)
}

// SolidBackground returns the same radiance in every direction
type SolidBackground struct {
	Radiance core.Vec3
}

// Color ignores the ray
func (s *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Radiance
}
