package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value float64
	vec2  core.Vec2
	vec3  core.Vec3
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return f.vec2
}
func (f fixedSampler) Get3D() core.Vec3 {
	return f.vec3
}

func TestLambertian_ScatterDirection(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.IsSpecular {
			t.Fatal("Lambertian scatter should not be specular")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Fatalf("Attenuation should equal albedo: got %v", scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at hit point, got %v", scatter.Scattered.Origin)
		}
		dir := scatter.Scattered.Direction
		if math.Abs(dir.Length()-1) > 1e-9 {
			t.Fatalf("Scattered direction should be unit length, got %f", dir.Length())
		}
		if dir.Dot(normal) < -1e-9 {
			t.Fatalf("Scattered direction %v points below the surface", dir)
		}
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))

	// Sample (0, 0) maps to (0, 0, 1); a normal pointing the opposite way cancels it
	unit := core.SampleOnUnitSphere(core.NewVec2(0, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: unit.Negate()}
	sampler := fixedSampler{vec2: core.NewVec2(0, 0)}

	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), hit, sampler)
	if !scatter.Scattered.Direction.Equals(hit.Normal) {
		t.Errorf("Expected fallback to normal %v, got %v", hit.Normal, scatter.Scattered.Direction)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewChecker(10, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	point := core.NewVec3(0.1, 0.1, 0.1)
	hit := HitRecord{Point: point, Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, sampler)

	expected := checker.Evaluate(hit.UV, point)
	if !scatter.Attenuation.Equals(expected) {
		t.Errorf("Expected textured attenuation %v, got %v", expected, scatter.Attenuation)
	}
}
