package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads the bounding box of a rectangle along its fixed axis so
// the box has non-zero volume
const rectThickness = 1e-4

// XYRect is a rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// XZRect is a rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// YZRect is a rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	x0, x1 = ordered(x0, x1)
	y0, y1 = ordered(y0, y1)
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	x0, x1 = ordered(x0, x1)
	z0, z1 = ordered(z0, z1)
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	y0, y1 = ordered(y0, y1)
	z0, z1 = ordered(z0, z1)
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, axisRect{a: 0, b: 1, k: 2, a0: r.X0, a1: r.X1, b0: r.Y0, b1: r.Y1, kv: r.K}, r.Material)
}

func (r *XYRect) BoundingBox() (core.AABB, bool) {
	return axisRect{a: 0, b: 1, k: 2, a0: r.X0, a1: r.X1, b0: r.Y0, b1: r.Y1, kv: r.K}.boundingBox(), true
}

func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, axisRect{a: 0, b: 2, k: 1, a0: r.X0, a1: r.X1, b0: r.Z0, b1: r.Z1, kv: r.K}, r.Material)
}

func (r *XZRect) BoundingBox() (core.AABB, bool) {
	return axisRect{a: 0, b: 2, k: 1, a0: r.X0, a1: r.X1, b0: r.Z0, b1: r.Z1, kv: r.K}.boundingBox(), true
}

func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, axisRect{a: 1, b: 2, k: 0, a0: r.Y0, a1: r.Y1, b0: r.Z0, b1: r.Z1, kv: r.K}, r.Material)
}

func (r *YZRect) BoundingBox() (core.AABB, bool) {
	return axisRect{a: 1, b: 2, k: 0, a0: r.Y0, a1: r.Y1, b0: r.Z0, b1: r.Z1, kv: r.K}.boundingBox(), true
}

// axisRect describes a rectangle spanning [a0,a1] on axis a and [b0,b1] on
// axis b, lying in the plane where axis k equals kv
type axisRect struct {
	a, b, k        int
	a0, a1, b0, b1 float64
	kv             float64
}

func hitAxisRect(ray core.Ray, tMin, tMax float64, r axisRect, mat material.Material) (*material.HitRecord, bool) {
	t := (r.kv - ray.Origin.Axis(r.k)) / ray.Direction.Axis(r.k)
	// negated form rejects the NaN of a ray lying in the plane
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(r.a) + t*ray.Direction.Axis(r.a)
	b := ray.Origin.Axis(r.b) + t*ray.Direction.Axis(r.b)
	// an infinite t makes a or b NaN or infinite, which also fails here
	if !(a >= r.a0 && a <= r.a1 && b >= r.b0 && b <= r.b1) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2(fraction(a, r.a0, r.a1), fraction(b, r.b0, r.b1)),
		Material: mat,
	}
	hit.SetFaceNormal(ray, axisVector(r.k))
	return hit, true
}

func (r axisRect) boundingBox() core.AABB {
	var lo, hi [3]float64
	lo[r.a], hi[r.a] = r.a0, r.a1
	lo[r.b], hi[r.b] = r.b0, r.b1
	lo[r.k], hi[r.k] = r.kv-rectThickness, r.kv+rectThickness
	return core.NewAABB(core.NewVec3(lo[0], lo[1], lo[2]), core.NewVec3(hi[0], hi[1], hi[2]))
}

// axisVector returns the unit vector along axis
func axisVector(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

func fraction(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func ordered(a, b float64) (float64, float64) {
	return math.Min(a, b), math.Max(a, b)
}
