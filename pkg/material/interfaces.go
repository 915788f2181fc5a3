package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false when the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emitted(hit HitRecord) core.Vec3
}

// EmittedLight returns the radiance emitted by m at the hit point, zero for non-emitters
func EmittedLight(m Material, hit HitRecord) core.Vec3 {
	if e, ok := m.(Emitter); ok {
		return e.Emitted(hit)
	}
	return core.Vec3{}
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Scattered   core.Ray  // The scattered ray
	IsSpecular  bool      // Mirror-like or refractive bounce (not diffuse)
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always opposing the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface coordinates for texturing
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
