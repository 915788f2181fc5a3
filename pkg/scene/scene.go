package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Shapes         []geometry.Shape      // Objects in the scene
	CameraConfig   renderer.CameraConfig // Camera placement, AspectRatio also sets the image height
	Background     integrator.Background // Radiance for escaping rays
	SamplingConfig SamplingConfig        // Defaults used when the caller does not override them
}

// SamplingConfig contains the scene's preferred render settings
type SamplingConfig struct {
	Width           int // Image width
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddSphereLight adds a spherical emitter to the scene
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) {
	s.Add(geometry.NewSphere(center, radius, material.NewDiffuseLight(emission)))
}

// AddCeilingLight adds a downward facing rectangular emitter at height y
func (s *Scene) AddCeilingLight(x0, x1, z0, z1, y float64, emission core.Vec3) {
	s.Add(geometry.NewXZRect(x0, x1, z0, z1, y, material.NewDiffuseLight(emission)))
}

// ImageHeight returns the image height for width at the scene's aspect ratio
func (s *Scene) ImageHeight(width int) int {
	if s.CameraConfig.AspectRatio <= 0 {
		return width
	}
	return max(1, int(float64(width)/s.CameraConfig.AspectRatio))
}

// NewCamera builds the scene camera
func (s *Scene) NewCamera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// BuildWorld builds the acceleration structure over every shape in the scene
func (s *Scene) BuildWorld(sampler core.Sampler, policy geometry.SplitPolicy) (*geometry.BVHNode, error) {
	bvh, err := geometry.NewBVH(s.Shapes, sampler, policy)
	if err != nil {
		return nil, fmt.Errorf("building BVH for scene %q: %w", s.Name, err)
	}
	return bvh, nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitives(shape)
	}
	return count
}

// countPrimitives counts primitives in a single shape, handling compound objects
func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Box:
		return len(obj.Faces())
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitives(child)
		}
		return count
	default:
		return 1
	}
}
