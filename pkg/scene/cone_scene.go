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

// coneSpec places a single cone in the cone scene
type coneSpec struct {
	apex      core.Vec3
	axis      core.Vec3
	halfAngle float64 // Radians
	height    float64
	capped    bool
	mat       material.Material
}

// NewConeScene creates a test scene with capped and open cones at several orientations
func NewConeScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "cones",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 1.5, 4),
			LookAt:      core.NewVec3(0, 1, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        50,
			AspectRatio: 16.0 / 9.0,
		},
		Background: integrator.NewSkyGradient(),
		SamplingConfig: SamplingConfig{
			Width:           400,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	// Create materials
	checker := material.NewTexturedLambertian(material.NewChecker(10,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	red := material.NewLambertian(core.NewVec3(0.8, 0.2, 0.2))
	blue := material.NewLambertian(core.NewVec3(0.2, 0.2, 0.8))
	green := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.2))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)
	glass := material.NewDielectric(1.5)

	// The checker pattern vanishes on y=0, so the floor sits just below it
	s.Add(geometry.NewXZRect(-50, 50, -50, 50, -0.01, checker))

	down := core.NewVec3(0, -1, 0)
	cones := []coneSpec{
		// Tall red cone standing on its base
		{core.NewVec3(0, 2, 0), down, math.Atan2(0.5, 2), 2, true, red},
		// Gold cone lying on its side with the open base towards the camera
		{core.NewVec3(-2, 0.5, -1), core.NewVec3(0, 0, 1), math.Pi / 8, 1.2, false, gold},
		// Wide blue cone balanced on its apex
		{core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0), math.Pi / 4, 0.8, true, blue},
		// Tilted open green cone
		{core.NewVec3(-1.2, 1.2, -0.3), core.NewVec3(-0.3, -1.2, -0.2), math.Pi / 10, 1.2, false, green},
		// Small glass cones in front
		{core.NewVec3(-0.8, 0.8, 1.2), down, math.Atan2(0.3, 0.8), 0.8, true, glass},
		{core.NewVec3(0.8, 1.0, 1.2), down, math.Atan2(0.3, 0.8), 0.8, true, glass},
	}

	for _, c := range cones {
		cone, err := geometry.NewCone(c.apex, c.axis, c.halfAngle, c.height, c.capped, c.mat)
		if err != nil {
			return nil, err
		}
		s.Add(cone)
	}

	s.AddSphereLight(core.NewVec3(3, 5, 3), 1.5, core.NewVec3(10, 10, 10))

	return s, nil
}
