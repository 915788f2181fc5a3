package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Occlusion estimates how exposed a surface point is to its surroundings.
// The returned factor in [0, 1] scales diffuse bounces only.
type Occlusion interface {
	Factor(hit *material.HitRecord, world geometry.Shape, sampler core.Sampler) float64
}

// NoOcclusion leaves every bounce unscaled
type NoOcclusion struct{}

// Factor always returns 1
func (NoOcclusion) Factor(hit *material.HitRecord, world geometry.Shape, sampler core.Sampler) float64 {
	return 1
}

// HemisphereOcclusion casts Samples rays in the hemisphere around the normal
// and returns the fraction that travel Distance without hitting anything
type HemisphereOcclusion struct {
	Samples  int
	Distance float64
}

// Factor returns the unoccluded fraction of the probe rays
func (h HemisphereOcclusion) Factor(hit *material.HitRecord, world geometry.Shape, sampler core.Sampler) float64 {
	if h.Samples <= 0 || h.Distance <= 0 {
		return 1
	}

	occluded := 0
	for i := 0; i < h.Samples; i++ {
		probe := core.NewRay(hit.Point, core.RandomInHemisphere(hit.Normal, sampler))
		if _, blocked := world.Hit(probe, HitEpsilon, h.Distance); blocked {
			occluded++
		}
	}
	return 1 - float64(occluded)/float64(h.Samples)
}
