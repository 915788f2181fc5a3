package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made of six rectangles forming a closed shell
type Box struct {
	Min, Max core.Vec3
	Material material.Material
	sides    *HittableList
}

// NewBox creates a box spanning the corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	lo := p0.Min(p1)
	hi := p0.Max(p1)

	sides := NewHittableList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat), // front
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat), // back
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat), // top
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat), // bottom
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat), // right
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat), // left
	)

	return &Box{Min: lo, Max: hi, Material: mat, sides: sides}
}

// Faces returns the six rectangles of the box
func (b *Box) Faces() []Shape {
	return b.sides.Shapes
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the union of the face boxes, so a flat box keeps
// the padding of its rectangles
func (b *Box) BoundingBox() (core.AABB, bool) {
	return b.sides.BoundingBox()
}
