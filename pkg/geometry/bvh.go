package geometry

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// BVHNode is a node in the Bounding Volume Hierarchy. Leaves hold the objects directly
// as Left and Right; a leaf over a single object stores it in both.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	box   core.AABB
	leaf  bool // Left == Right, test it only once
}

// bvhItem pairs an object with its box so boxes are computed once per build
type bvhItem struct {
	object Hittable
	box    core.AABB
}

// NewBVH builds a BVH over objects for the shutter interval [time0, time1].
// The split axis at each node is derived from seed, the node depth and the
// position of its first object, so identical input order and seed give identical trees.
func NewBVH(objects []Hittable, time0, time1 float64, seed uint64) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyList
	}

	items := make([]bvhItem, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrNoBoundingBox)
		}
		items[i] = bvhItem{object: object, box: box}
	}

	node, _ := buildBVH(items, 0, 0, seed)
	return node, nil
}

// buildBVH recursively partitions items, returning the node and its box.
// start is the index of items[0] in the original list.
func buildBVH(items []bvhItem, depth, start int, seed uint64) (*BVHNode, core.AABB) {
	axis := int(core.MixSeed(seed, uint64(depth), uint64(start)) % 3)
	compare := func(a, b bvhItem) int {
		return cmp.Compare(a.box.Center().Axis(axis), b.box.Center().Axis(axis))
	}

	switch len(items) {
	case 1:
		return &BVHNode{Left: items[0].object, Right: items[0].object, box: items[0].box, leaf: true}, items[0].box
	case 2:
		first, second := items[0], items[1]
		if compare(second, first) < 0 {
			first, second = second, first
		}
		box := first.box.Union(second.box)
		return &BVHNode{Left: first.object, Right: second.object, box: box}, box
	}

	// Sorting a copy keeps the caller's order intact for reproducible rebuilds
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compare)

	mid := len(sorted) / 2
	left, leftBox := buildBVH(sorted[:mid], depth+1, start, seed)
	right, rightBox := buildBVH(sorted[mid:], depth+1, start+mid, seed)
	box := leftBox.Union(rightBox)

	return &BVHNode{Left: left, Right: right, box: box}, box
}

// Hit tests the node's box over rayT, then both children. A hit in the left
// child becomes the upper bound for the right, so the closer result wins.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)
	if n.leaf {
		return leftHit, hitLeft
	}
	if hitLeft {
		rayT = rayT.WithMax(leftHit.T)
	}

	if rightHit, hitRight := n.Right.Hit(ray, rayT, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box computed at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafNodes  int
	maxDepth   int
	objects    int
}

// Stats summarizes the tree for logging
func (n *BVHNode) Stats() string {
	var stats bvhStats
	n.collectStats(0, &stats)
	return fmt.Sprintf("%d nodes, %d leaves, %d objects, depth %d",
		stats.totalNodes, stats.leafNodes, stats.objects, stats.maxDepth)
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.leaf {
		children = children[:1]
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.objects++
		}
	}
	if _, ok := n.Left.(*BVHNode); !ok {
		stats.leafNodes++
	}
}
