package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emissive material that never scatters
type DiffuseLight struct {
	Emit ColorSource // Emitted radiance, may vary over the surface
}

// NewDiffuseLight creates a light with uniform emission
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission comes from a texture
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emission at the hit point
func (e *DiffuseLight) Emitted(hit HitRecord) core.Vec3 {
	return e.Emit.Evaluate(hit.UV, hit.Point)
}
