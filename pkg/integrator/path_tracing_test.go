package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// fixedMaterial scatters every ray in one direction with a fixed attenuation
type fixedMaterial struct {
	direction   core.Vec3
	attenuation core.Vec3
	specular    bool
}

func (m *fixedMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterRecord, bool) {
	return material.ScatterRecord{
		Scattered:   core.NewRay(hit.Point, m.direction),
		IsSpecular:  m.specular,
		Attenuation: m.attenuation,
	}, true
}

// constantOcclusion reports the same factor everywhere
type constantOcclusion float64

func (c constantOcclusion) Factor(hit *material.HitRecord, world geometry.Shape, sampler core.Sampler) float64 {
	return float64(c)
}

func newSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func assertColor(t *testing.T, expected, got core.Vec3) {
	t.Helper()
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected color %v, got %v", expected, got)
	}
}

func TestRayColor_DepthExhaustedIsBlack(t *testing.T) {
	pt := NewPathTracer(nil, nil)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, depth := range []int{0, -1} {
		if got := pt.RayColor(ray, world, newSampler(), depth); got != (core.Vec3{}) {
			t.Errorf("depth %d: expected black, got %v", depth, got)
		}
	}
	if got := pt.RayColor(ray, world, newSampler(), 5); got == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestRayColor_MissReturnsSkyGradient(t *testing.T) {
	pt := NewPathTracer(nil, nil)
	world := geometry.NewHittableList()

	tests := []struct {
		name     string
		dir      core.Vec3
		expected core.Vec3
	}{
		{"Straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"Straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"Horizontal", core.NewVec3(0, 0, -3), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.dir), world, newSampler(), 1)
			assertColor(t, tt.expected, got)
		})
	}
}

func TestRayColor_EmitterReturnsEmissionOnly(t *testing.T) {
	emission := core.NewVec3(0.25, 0.64, 0.81)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 100, material.NewDiffuseLight(emission)))
	pt := NewPathTracer(nil, nil)
	sampler := newSampler()

	for i := 0; i < 50; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.RandomUnitVector(sampler))
		assertColor(t, emission, pt.RayColor(ray, world, sampler, 10))
	}
}

func TestRayColor_MirrorReflectsBackground(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	world := geometry.NewHittableList(geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewMetal(albedo, 0)))
	pt := NewPathTracer(nil, nil)

	// Straight down onto the mirror, reflects straight up into the sky
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	assertColor(t, albedo.MultiplyVec(core.NewVec3(0.5, 0.7, 1.0)), pt.RayColor(ray, world, newSampler(), 5))

	// With only one bounce allowed the reflected ray has no depth left
	assertColor(t, core.Vec3{}, pt.RayColor(ray, world, newSampler(), 1))
}

func TestRayColor_OcclusionScalesDiffuseOnly(t *testing.T) {
	attenuation := core.NewVec3(0.5, 0.5, 0.5)
	up := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sky := core.NewVec3(0.5, 0.7, 1.0)

	tests := []struct {
		name     string
		specular bool
		expected core.Vec3
	}{
		{"Diffuse bounce is scaled", false, attenuation.MultiplyVec(sky).Multiply(0.25)},
		{"Specular bounce is untouched", true, attenuation.MultiplyVec(sky)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := &fixedMaterial{direction: up, attenuation: attenuation, specular: tt.specular}
			world := geometry.NewHittableList(geometry.NewXZRect(-10, 10, -10, 10, 0, mat))
			pt := NewPathTracer(nil, constantOcclusion(0.25))
			assertColor(t, tt.expected, pt.RayColor(ray, world, newSampler(), 5))
		})
	}
}

func TestRayColor_EmissionNotScaledByOcclusion(t *testing.T) {
	emission := core.NewVec3(2, 2, 2)
	world := geometry.NewHittableList(geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewDiffuseLight(emission)))
	pt := NewPathTracer(nil, constantOcclusion(0))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	assertColor(t, emission, pt.RayColor(ray, world, newSampler(), 5))
}

func TestRayColor_SolidBackground(t *testing.T) {
	pt := NewPathTracer(&SolidBackground{Radiance: core.NewVec3(0.1, 0.2, 0.3)}, nil)
	got := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), geometry.NewHittableList(), newSampler(), 3)
	assertColor(t, core.NewVec3(0.1, 0.2, 0.3), got)
}

func TestRayColor_DiffuseEnergyBounded(t *testing.T) {
	// A grey sphere under a white sky can never be brighter than the sky
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	pt := NewPathTracer(&SolidBackground{Radiance: core.NewVec3(1, 1, 1)}, nil)
	sampler := newSampler()

	for i := 0; i < 200; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1).Add(core.RandomInUnitSphere(sampler).Multiply(0.3)))
		c := pt.RayColor(ray, world, sampler, 20)
		if c.X > 1+1e-9 || c.Y > 1+1e-9 || c.Z > 1+1e-9 || math.IsNaN(c.X) {
			t.Fatalf("Radiance %v exceeds the sky radiance", c)
		}
	}
}
