package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Wood grain colors
var (
	woodLight = core.NewVec3(0.76, 0.60, 0.42)
	woodDark  = core.NewVec3(0.45, 0.30, 0.15)
)

// NewDefaultScene creates the default scene: three spheres, a noise box and a
// wood cone on a yellow ground, lit by a glowing wall behind them
func NewDefaultScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "default",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 2, 3),
			LookAt:      core.NewVec3(0, 1, -1.5),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40,
			AspectRatio: 16.0 / 9.0,
			Aperture:    0.15, // Focus distance defaults to |LookFrom - LookAt|
		},
		Background: integrator.NewSkyGradient(),
		SamplingConfig: SamplingConfig{
			Width:           720,
			SamplesPerPixel: 50,
			MaxDepth:        25,
		},
	}

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	diffuse := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	noise := material.NewTexturedLambertian(material.NewNoiseTexture(4.0, random))
	wood := material.NewTexturedLambertian(material.NewWoodTexture(10.0,
		material.NewSolidColor(woodLight), material.NewSolidColor(woodDark), random))

	// Ground and the glowing wall behind the scene
	s.Add(geometry.NewXZRect(-10, 10, -10, 10, 0, ground))
	s.Add(geometry.NewXYRect(-10, 10, -10, 10, -5, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))

	s.Add(
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, diffuse),
		geometry.NewSphere(core.NewVec3(0, 0.5, -2), 0.5, glass),
		geometry.NewSphere(core.NewVec3(0, 1.5, -1.5), 0.5, metal),
	)

	s.Add(geometry.NewBox(core.NewVec3(-2, 0, -2.5), core.NewVec3(-1, 1, -1.5), noise))

	// Point down, 30 degree half angle, base resting on the ground
	cone, err := geometry.NewCone(core.NewVec3(2, 2, -2), core.NewVec3(0, -1, 0), math.Pi/6, 2, true, wood)
	if err != nil {
		return nil, err
	}
	s.Add(cone)

	return s, nil
}
