package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewTextureScene shows every procedural texture side by side under a sky and
// a small glowing sphere
func NewTextureScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "textures",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 2.5, 6),
			LookAt:      core.NewVec3(0, 0.75, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        35,
			AspectRatio: 16.0 / 9.0,
		},
		Background: integrator.NewSkyGradient(),
		SamplingConfig: SamplingConfig{
			Width:           600,
			SamplesPerPixel: 64,
			MaxDepth:        20,
		},
	}

	checker := material.NewChecker(8, core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.85, 0.85, 0.85))
	marble := material.NewNoiseTexture(4, random)
	wood := material.NewWoodTexture(10,
		material.NewSolidColor(woodLight), material.NewSolidColor(woodDark), random)

	// Checkered floor just below y=0, where the pattern vanishes
	s.Add(geometry.NewXZRect(-20, 20, -20, 20, -0.01, material.NewTexturedLambertian(checker)))

	s.Add(
		geometry.NewSphere(core.NewVec3(-2, 0.75, 0), 0.75, material.NewTexturedLambertian(marble)),
		geometry.NewSphere(core.NewVec3(0, 0.75, 0), 0.75, material.NewTexturedLambertian(wood)),
		geometry.NewBox(core.NewVec3(1.4, 0, -0.6), core.NewVec3(2.6, 1.2, 0.6), material.NewTexturedLambertian(marble)),
	)

	// Textured emitter above the objects
	s.Add(geometry.NewSphere(core.NewVec3(0, 3, -1.5), 0.4, material.NewTexturedDiffuseLight(
		material.NewChecker(12, core.NewVec3(6, 5, 4), core.NewVec3(2, 2, 2)))))

	return s, nil
}
