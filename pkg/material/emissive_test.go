package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: light}

	if _, scattered := light.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), hit, sampler); scattered {
		t.Error("Diffuse light should never scatter")
	}
	if got := EmittedLight(light, hit); got != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected emission (4,4,4), got %v", got)
	}
}

func TestEmittedLight_ZeroForNonEmitters(t *testing.T) {
	materials := []Material{
		NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0),
		NewDielectric(1.5),
	}
	hit := HitRecord{Point: core.NewVec3(1, 1, 1)}
	for _, m := range materials {
		if got := EmittedLight(m, hit); got != (core.Vec3{}) {
			t.Errorf("%T: expected zero emission, got %v", m, got)
		}
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 1, 0)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"Ray against normal hits front face", core.NewVec3(0, -1, 0), true, outward},
		{"Ray along normal hits back face", core.NewVec3(0, 1, 0), false, outward.Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), outward)
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(tt.direction) > 0 {
				t.Error("Stored normal must oppose the ray")
			}
		})
	}
}
