package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	// coneParallelEpsilon bounds |A| relative to |d|² below which the ray runs
	// parallel to a generator line and the quadratic degenerates
	coneParallelEpsilon = 1e-9
	// coneLinearEpsilon is the smallest |B| for which the degenerate linear
	// equation is still solved
	coneLinearEpsilon = 1e-12
)

// Cone is a finite right circular cone opening from Apex along Axis
type Cone struct {
	Apex      core.Vec3
	Axis      core.Vec3 // Unit vector from apex towards the base
	HalfAngle float64   // Angle between axis and surface, in radians
	Height    float64   // Distance from apex to base along the axis
	Capped    bool      // Whether the base disc is closed
	Material  material.Material

	// Cached derived values
	tan2               float64   // tan²(HalfAngle)
	radius             float64   // Base radius
	tangent, bitangent core.Vec3 // Basis perpendicular to Axis, for texture coordinates
}

// NewCone creates a cone with its tip at apex, widening along axis for height units
func NewCone(apex, axis core.Vec3, halfAngle, height float64, capped bool, mat material.Material) (*Cone, error) {
	if height <= 0 {
		return nil, fmt.Errorf("cone height must be positive, got %f", height)
	}
	if halfAngle <= 0 || halfAngle >= math.Pi/2 {
		return nil, fmt.Errorf("cone half-angle must be in (0, π/2), got %f", halfAngle)
	}
	if axis.LengthSquared() == 0 {
		return nil, fmt.Errorf("cone axis must be non-zero")
	}

	unitAxis := axis.Normalize()
	tan := math.Tan(halfAngle)
	tangent, bitangent := core.OrthonormalBasis(unitAxis)

	return &Cone{
		Apex:      apex,
		Axis:      unitAxis,
		HalfAngle: halfAngle,
		Height:    height,
		Capped:    capped,
		Material:  mat,
		tan2:      tan * tan,
		radius:    height * tan,
		tangent:   tangent,
		bitangent: bitangent,
	}, nil
}

// BaseCenter returns the center of the base disc
func (c *Cone) BaseCenter() core.Vec3 {
	return c.Apex.Add(c.Axis.Multiply(c.Height))
}

// BaseRadius returns the radius of the base disc
func (c *Cone) BaseRadius() float64 {
	return c.radius
}

// Hit tests if a ray intersects the cone surface or, when capped, its base
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	closestHit := c.hitBody(ray, tMin, tMax)

	if c.Capped {
		closestT := tMax
		if closestHit != nil {
			closestT = closestHit.T
		}
		if capHit := c.hitCap(ray, tMin, closestT); capHit != nil {
			closestHit = capHit
		}
	}

	return closestHit, closestHit != nil
}

// hitBody intersects the lateral surface. In the axis frame the cone is
// |q⊥|² = k²(q·a)², which for q = o + t·d gives A t² + B t + C = 0.
func (c *Cone) hitBody(ray core.Ray, tMin, tMax float64) *material.HitRecord {
	o := ray.Origin.Subtract(c.Apex)
	d := ray.Direction

	oa := o.Dot(c.Axis)
	da := d.Dot(c.Axis)
	oPerp := o.Subtract(c.Axis.Multiply(oa))
	dPerp := d.Subtract(c.Axis.Multiply(da))

	a := dPerp.LengthSquared() - c.tan2*da*da
	b := 2 * (dPerp.Dot(oPerp) - c.tan2*da*oa)
	cc := oPerp.LengthSquared() - c.tan2*oa*oa

	if math.Abs(a) < coneParallelEpsilon*d.LengthSquared() {
		// parallel to a generator: B t + C = 0
		if math.Abs(b) <= coneLinearEpsilon {
			return nil
		}
		t := -cc / b
		if !c.validBodyRoot(ray, t, tMin, tMax) {
			return nil
		}
		return c.bodyHitRecord(ray, t)
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	// q shares the sign of b, so neither root subtracts nearly equal values
	q := -0.5 * (b + math.Copysign(sqrtD, b))
	t0 := q / a
	t1 := t0
	if q != 0 {
		t1 = cc / q
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	for _, t := range [2]float64{t0, t1} {
		if c.validBodyRoot(ray, t, tMin, tMax) {
			return c.bodyHitRecord(ray, t)
		}
	}
	return nil
}

// validBodyRoot accepts t in [tMin, tMax] whose point lies between apex and base
func (c *Cone) validBodyRoot(ray core.Ray, t, tMin, tMax float64) bool {
	if !(t >= tMin && t <= tMax) {
		return false
	}
	v := ray.At(t).Subtract(c.Apex).Dot(c.Axis)
	return v >= 0 && v <= c.Height
}

func (c *Cone) bodyHitRecord(ray core.Ray, t float64) *material.HitRecord {
	point := ray.At(t)
	q := point.Subtract(c.Apex)
	v := q.Dot(c.Axis)
	qPerp := q.Subtract(c.Axis.Multiply(v))

	// gradient of |q⊥|² - k²(q·a)²
	outwardNormal := qPerp.Subtract(c.Axis.Multiply(c.tan2 * v)).Normalize()
	if outwardNormal.LengthSquared() == 0 {
		// exactly at the apex
		outwardNormal = c.Axis.Negate()
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2(c.azimuth(qPerp), v/c.Height),
		Material: c.Material,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// hitCap intersects the base disc
func (c *Cone) hitCap(ray core.Ray, tMin, tMax float64) *material.HitRecord {
	center := c.BaseCenter()
	t := center.Subtract(ray.Origin).Dot(c.Axis) / ray.Direction.Dot(c.Axis)
	if !(t >= tMin && t <= tMax) {
		return nil
	}

	point := ray.At(t)
	offset := point.Subtract(center)
	if !(offset.LengthSquared() <= c.radius*c.radius) {
		return nil
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    point,
		UV:       core.NewVec2(c.azimuth(offset), 1),
		Material: c.Material,
	}
	hit.SetFaceNormal(ray, c.Axis)
	return hit
}

// azimuth returns the angle of perp around the axis, normalized to [0, 1]
func (c *Cone) azimuth(perp core.Vec3) float64 {
	phi := math.Atan2(perp.Dot(c.bitangent), perp.Dot(c.tangent))
	return (phi + math.Pi) / (2 * math.Pi)
}

// BoundingBox returns the apex united with the exact extent of the base disc
func (c *Cone) BoundingBox() (core.AABB, bool) {
	center := c.BaseCenter()
	extent := core.NewVec3(
		c.radius*math.Sqrt(math.Max(0, 1-c.Axis.X*c.Axis.X)),
		c.radius*math.Sqrt(math.Max(0, 1-c.Axis.Y*c.Axis.Y)),
		c.radius*math.Sqrt(math.Max(0, 1-c.Axis.Z*c.Axis.Z)),
	)
	return core.NewAABBFromPoints(c.Apex, center.Subtract(extent), center.Add(extent)), true
}
