package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestXZRect_Hit(t *testing.T) {
	rect := NewXZRect(-1, 1, -2, 2, 0, nil)

	tests := []struct {
		name          string
		ray           core.Ray
		expectHit     bool
		expectedT     float64
		expectedFront bool
	}{
		{"From above", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)), true, 3, true},
		{"From below", core.NewRay(core.NewVec3(0.5, -2, 1), core.NewVec3(0, 1, 0)), true, 2, false},
		{"Outside bounds", core.NewRay(core.NewVec3(1.5, 3, 0), core.NewVec3(0, -1, 0)), false, 0, false},
		{"Parallel to plane", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)), false, 0, false},
		{"Parallel in plane", core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)), false, 0, false},
		{"Pointing away", core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 1, 0)), false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := rect.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Normal %v should oppose the ray", hit.Normal)
			}
		})
	}
}

func TestRects_OutwardNormalIsPositiveAxis(t *testing.T) {
	tests := []struct {
		name   string
		shape  Shape
		ray    core.Ray
		normal core.Vec3
	}{
		{"XY", NewXYRect(-1, 1, -1, 1, 0, nil), core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), core.NewVec3(0, 0, 1)},
		{"XZ", NewXZRect(-1, 1, -1, 1, 0, nil), core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), core.NewVec3(0, 1, 0)},
		{"YZ", NewYZRect(-1, 1, -1, 1, 0, nil), core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0)), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.shape.Hit(tt.ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if !hit.FrontFace || hit.Normal != tt.normal {
				t.Errorf("Expected front face with normal %v, got front=%v normal=%v", tt.normal, hit.FrontFace, hit.Normal)
			}
		})
	}
}

func TestXYRect_UV(t *testing.T) {
	tests := []struct {
		name          string
		rect          *XYRect
		ray           core.Ray
		expectedT     float64
		expectedPoint core.Vec3
		expectedUV    core.Vec2
	}{
		{
			name:          "Unit square at z=5",
			rect:          NewXYRect(0, 1, 0, 1, 5, nil),
			ray:           core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1)),
			expectedT:     5,
			expectedPoint: core.NewVec3(0.5, 0.5, 5),
			expectedUV:    core.NewVec2(0.5, 0.5),
		},
		{
			name:          "Offset rectangle behind the origin",
			rect:          NewXYRect(0, 4, 10, 12, -1, nil),
			ray:           core.NewRay(core.NewVec3(1, 11.5, 0), core.NewVec3(0, 0, -1)),
			expectedT:     1,
			expectedPoint: core.NewVec3(1, 11.5, -1),
			expectedUV:    core.NewVec2(0.25, 0.75),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.rect.Hit(tt.ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Point.Subtract(tt.expectedPoint).Length() > 1e-9 {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected uv %v, got %v", tt.expectedUV, hit.UV)
			}
		})
	}
}

func TestRects_BoundingBoxThickened(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		expected core.AABB
	}{
		{"XY", NewXYRect(0, 1, 2, 3, 5, nil), core.NewAABB(core.NewVec3(0, 2, 5-rectThickness), core.NewVec3(1, 3, 5+rectThickness))},
		{"XZ", NewXZRect(0, 1, 2, 3, 5, nil), core.NewAABB(core.NewVec3(0, 5-rectThickness, 2), core.NewVec3(1, 5+rectThickness, 3))},
		{"YZ", NewYZRect(0, 1, 2, 3, 5, nil), core.NewAABB(core.NewVec3(5-rectThickness, 0, 2), core.NewVec3(5+rectThickness, 1, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.shape.BoundingBox()
			if !ok {
				t.Fatal("Rectangle should have a bounding box")
			}
			if box != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, box)
			}
		})
	}
}
