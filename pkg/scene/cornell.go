package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// cornellSize is the edge length of the standard Cornell box
const cornellSize = 555.0

// NewCornellScene creates a classic Cornell box scene with rect walls and a ceiling light
func NewCornellScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "cornell-box",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(278, 278, -800), // Outside the open front of the box
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40,
			AspectRatio: 1,
		},
		Background: &integrator.SolidBackground{}, // All light comes from the ceiling
		SamplingConfig: SamplingConfig{
			Width:           400,
			SamplesPerPixel: 150,
			MaxDepth:        40,
		},
	}

	// Create materials
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Walls
	s.Add(
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green), // Right
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),             // Left
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),           // Floor
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white), // Ceiling
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white), // Back
	)

	// Light just below the ceiling
	s.AddCeilingLight(213, 343, 227, 332, cornellSize-1, core.NewVec3(15, 15, 15))

	// Short and tall blocks
	s.Add(
		geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white),
		geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white),
	)

	// Glass sphere resting on the short block, mirror sphere on the tall one
	s.Add(
		geometry.NewSphere(core.NewVec3(212.5, 165+70, 147.5), 70, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(347.5, 330+50, 377.5), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0)),
	)

	return s, nil
}
