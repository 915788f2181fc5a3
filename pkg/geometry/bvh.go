package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrEmptyScene is returned when building a hierarchy over no shapes
	ErrEmptyScene = errors.New("no shapes to build a BVH from")
	// ErrMissingBoundingBox is returned when a shape cannot be bounded
	ErrMissingBoundingBox = errors.New("shape has no bounding box")
)

// SplitPolicy selects the axis used to partition shapes at each BVH level
type SplitPolicy int

const (
	// RandomAxis picks X, Y or Z uniformly at every node
	RandomAxis SplitPolicy = iota
	// LongestAxis splits along the axis of greatest extent of the node's shapes
	LongestAxis
)

func (p SplitPolicy) String() string {
	switch p {
	case RandomAxis:
		return "random"
	case LongestAxis:
		return "longest"
	default:
		return fmt.Sprintf("SplitPolicy(%d)", int(p))
	}
}

// ParseSplitPolicy converts "random" or "longest" to a SplitPolicy
func ParseSplitPolicy(name string) (SplitPolicy, error) {
	switch name {
	case "random", "":
		return RandomAxis, nil
	case "longest":
		return LongestAxis, nil
	default:
		return RandomAxis, fmt.Errorf("unknown BVH split policy %q", name)
	}
}

// BVHNode is a binary bounding volume hierarchy node. Children are either
// nodes or primitives; a single primitive is stored in both children.
// Nodes are immutable after construction and safe for concurrent reads.
type BVHNode struct {
	Left, Right Shape
	Box         core.AABB
	single      bool // Left and Right alias one primitive
}

// NewBVH builds a hierarchy over a copy of shapes. The sampler drives axis
// selection for RandomAxis.
func NewBVH(shapes []Shape, sampler core.Sampler, policy SplitPolicy) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	// Copy so sorting does not reorder the caller's slice
	objects := make([]Shape, len(shapes))
	copy(objects, shapes)

	for i, shape := range objects {
		if _, ok := shape.BoundingBox(); !ok {
			return nil, fmt.Errorf("shape %d (%T): %w", i, shape, ErrMissingBoundingBox)
		}
	}

	b := &bvhBuilder{sampler: sampler, policy: policy}
	return b.build(objects, 0, len(objects)), nil
}

type bvhBuilder struct {
	sampler core.Sampler
	policy  SplitPolicy
}

// build constructs a node over the half-open range objects[start:end]
func (b *bvhBuilder) build(objects []Shape, start, end int) *BVHNode {
	node := &BVHNode{}
	span := end - start
	axis := b.chooseAxis(objects[start:end])

	switch span {
	case 1:
		node.Left = objects[start]
		node.Right = objects[start]
		node.single = true
	case 2:
		if boxMin(objects[start], axis) <= boxMin(objects[start+1], axis) {
			node.Left = objects[start]
			node.Right = objects[start+1]
		} else {
			node.Left = objects[start+1]
			node.Right = objects[start]
		}
	default:
		sub := objects[start:end]
		sort.Slice(sub, func(i, j int) bool {
			return boxMin(sub[i], axis) < boxMin(sub[j], axis)
		})
		mid := start + span/2
		node.Left = b.build(objects, start, mid)
		node.Right = b.build(objects, mid, end)
	}

	leftBox, _ := node.Left.BoundingBox()
	rightBox, _ := node.Right.BoundingBox()
	node.Box = core.SurroundingBox(leftBox, rightBox)
	return node
}

func (b *bvhBuilder) chooseAxis(objects []Shape) int {
	if b.policy == LongestAxis {
		bounds, _ := NewHittableList(objects...).BoundingBox()
		return bounds.LongestAxis()
	}
	return core.RandomInt(b.sampler, 0, 2)
}

func boxMin(shape Shape, axis int) float64 {
	box, _ := shape.BoundingBox()
	return box.Min.Axis(axis)
}

// Hit tests the node box, then the left child, then the right child limited
// to the left child's hit distance
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the precomputed box of the node
func (n *BVHNode) BoundingBox() (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes      int // Interior nodes
	Primitives int // Distinct leaf primitives
	MaxDepth   int // Nodes on the longest root-to-primitive path
}

// Stats walks the hierarchy and returns its statistics
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Shape{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if childNode, ok := child.(*BVHNode); ok {
			childNode.collectStats(depth+1, stats)
		} else {
			stats.Primitives++
		}
	}
}
