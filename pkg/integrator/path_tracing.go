package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HitEpsilon is the minimum ray parameter accepted for secondary rays so a
// surface does not re-intersect itself
const HitEpsilon = 0.001

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct {
	Background Background
	Occlusion  Occlusion
}

// NewPathTracer creates a path tracer. A nil background uses the sky gradient
// and a nil occlusion strategy disables ambient occlusion.
func NewPathTracer(background Background, occlusion Occlusion) *PathTracer {
	if background == nil {
		background = NewSkyGradient()
	}
	if occlusion == nil {
		occlusion = NoOcclusion{}
	}
	return &PathTracer{Background: background, Occlusion: occlusion}
}

// RayColor computes the radiance arriving along ray, following at most depth bounces
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, HitEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	emitted := material.EmittedLight(hit.Material, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, sampler, depth-1)
	contribution := scatter.Attenuation.MultiplyVec(incoming)
	if !scatter.IsSpecular {
		contribution = contribution.Multiply(pt.Occlusion.Factor(hit, world, sampler))
	}

	return emitted.Add(contribution)
}
