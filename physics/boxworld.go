package physics

import (
	"math"
	"sync/atomic"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// closestPointIterations bounds the alternating segment/box projection
const closestPointIterations = 8

// AABB is an axis-aligned box
type AABB struct {
	Min, Max vmath.Vec3
}

// ClosestPoint clamps p into the box
func (b AABB) ClosestPoint(p vmath.Vec3) vmath.Vec3 {
	return vmath.Vec3{
		X: vmath.Clamp(p.X, b.Min.X, b.Max.X),
		Y: vmath.Clamp(p.Y, b.Min.Y, b.Max.Y),
		Z: vmath.Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
}

func (b AABB) Center() vmath.Vec3 {
	return vmath.V3Lerp(b.Min, b.Max, 0.5)
}

// StaticWorld is an Oracle over a fixed set of boxes
// The box set is published atomically; until Load is called every query misses
type StaticWorld struct {
	boxes atomic.Pointer[[]AABB]
}

// NewStaticWorld returns a world that is not ready yet
func NewStaticWorld() *StaticWorld {
	return &StaticWorld{}
}

// Load publishes the box set; safe to call from a loader goroutine while the simulation queries
func (w *StaticWorld) Load(boxes []AABB) {
	cp := make([]AABB, len(boxes))
	copy(cp, boxes)
	w.boxes.Store(&cp)
}

// Ready reports whether geometry has been loaded
func (w *StaticWorld) Ready() bool {
	return w.boxes.Load() != nil
}

// Boxes returns the loaded geometry, nil before Load
func (w *StaticWorld) Boxes() []AABB {
	if p := w.boxes.Load(); p != nil {
		return *p
	}
	return nil
}

// IntersectCapsule accumulates push-out over every overlapping box
// Returned normal is the normalized sum, depth its length
func (w *StaticWorld) IntersectCapsule(c vmath.Capsule) (Hit, bool) {
	var sum vmath.Vec3
	hit := false
	for _, b := range w.Boxes() {
		if push, ok := capsuleBox(c, b); ok {
			sum = vmath.V3Add(sum, push)
			hit = true
		}
	}
	return accumulated(sum, hit)
}

// IntersectSphere accumulates push-out over every overlapping box
func (w *StaticWorld) IntersectSphere(center vmath.Vec3, radius float64) (Hit, bool) {
	var sum vmath.Vec3
	hit := false
	for _, b := range w.Boxes() {
		if push, ok := pointBox(center, radius, b); ok {
			sum = vmath.V3Add(sum, push)
			hit = true
		}
	}
	return accumulated(sum, hit)
}

func accumulated(sum vmath.Vec3, hit bool) (Hit, bool) {
	if !hit {
		return Hit{}, false
	}
	depth := vmath.V3Mag(sum)
	n := vmath.V3Normalize(sum)
	if vmath.V3IsZero(n) {
		// Opposing contacts cancelled out; report a touching contact with no push
		return Hit{Normal: vmath.Up, Depth: 0}, true
	}
	return Hit{Normal: n, Depth: depth}, true
}

// capsuleBox finds the segment point nearest to the box by alternating projections
func capsuleBox(c vmath.Capsule, b AABB) (vmath.Vec3, bool) {
	p, _ := vmath.ClosestPointOnSegment(c.Start, c.End, b.Center())
	for i := 0; i < closestPointIterations; i++ {
		q := b.ClosestPoint(p)
		next, _ := vmath.ClosestPointOnSegment(c.Start, c.End, q)
		if vmath.V3DistSq(next, p) < vmath.Epsilon {
			p = next
			break
		}
		p = next
	}
	return pointBox(p, c.Radius, b)
}

// pointBox returns the push-out for a sphere at p against the box
func pointBox(p vmath.Vec3, radius float64, b AABB) (vmath.Vec3, bool) {
	q := b.ClosestPoint(p)
	d := vmath.V3Sub(p, q)
	distSq := vmath.V3MagSq(d)

	if distSq > vmath.Epsilon {
		if distSq >= radius*radius {
			return vmath.Vec3{}, false
		}
		dist := math.Sqrt(distSq)
		return vmath.V3Scale(d, (radius-dist)/dist), true
	}

	// Center inside the box: exit through the nearest face
	faces := [6]struct {
		dist float64
		n    vmath.Vec3
	}{
		{p.X - b.Min.X, vmath.Vec3{X: -1}},
		{b.Max.X - p.X, vmath.Vec3{X: 1}},
		{p.Y - b.Min.Y, vmath.Vec3{Y: -1}},
		{b.Max.Y - p.Y, vmath.Vec3{Y: 1}},
		{p.Z - b.Min.Z, vmath.Vec3{Z: -1}},
		{b.Max.Z - p.Z, vmath.Vec3{Z: 1}},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return vmath.V3Scale(best.n, best.dist+radius), true
}

// DefaultArena builds the built-in level: two floor slabs split by a trench, four pillars, perimeter walls
func DefaultArena() []AABB {
	h := parameter.ArenaHalfExtent
	t := parameter.ArenaFloorThickness
	wh := parameter.ArenaWallHeight
	gap := parameter.ArenaGapWidth
	trench := h * 0.4 // Trench runs along Z, off the spawn point

	boxes := []AABB{
		// Floor
		{Min: vmath.Vec3{X: -h, Y: -t, Z: -h}, Max: vmath.Vec3{X: trench, Y: 0, Z: h}},
		{Min: vmath.Vec3{X: trench + gap, Y: -t, Z: -h}, Max: vmath.Vec3{X: h, Y: 0, Z: h}},
		// Walls
		{Min: vmath.Vec3{X: -h - 1, Y: -t, Z: -h - 1}, Max: vmath.Vec3{X: h + 1, Y: wh, Z: -h}},
		{Min: vmath.Vec3{X: -h - 1, Y: -t, Z: h}, Max: vmath.Vec3{X: h + 1, Y: wh, Z: h + 1}},
		{Min: vmath.Vec3{X: -h - 1, Y: -t, Z: -h}, Max: vmath.Vec3{X: -h, Y: wh, Z: h}},
		{Min: vmath.Vec3{X: h, Y: -t, Z: -h}, Max: vmath.Vec3{X: h + 1, Y: wh, Z: h}},
	}

	pillar := h * 0.24
	for _, sx := range []float64{-1, 1} {
		for _, sz := range []float64{-1, 1} {
			c := vmath.Vec3{X: sx * pillar, Z: sz * pillar}
			boxes = append(boxes, AABB{
				Min: vmath.Vec3{X: c.X - 0.75, Y: 0, Z: c.Z - 0.75},
				Max: vmath.Vec3{X: c.X + 0.75, Y: 3, Z: c.Z + 0.75},
			})
		}
	}
	return boxes
}
