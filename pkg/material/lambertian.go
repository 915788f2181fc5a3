package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// degenerateScatterEpsilon is the squared length below which a diffuse
// direction is considered to have cancelled against the normal
const degenerateScatterEpsilon = 1e-8

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a texture
func NewTexturedLambertian(albedoTexture ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter sends the ray towards normal + random unit vector
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))
	if direction.LengthSquared() < degenerateScatterEpsilon {
		direction = hit.Normal
	}

	return ScatterRecord{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		IsSpecular:  false,
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
