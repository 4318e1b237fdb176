package vmath

// Capsule is a swept sphere along segment [Start, End]
type Capsule struct {
	Start  Vec3
	End    Vec3
	Radius float64
}

func NewCapsule(start, end Vec3, radius float64) Capsule {
	return Capsule{Start: start, End: end, Radius: radius}
}

// Translate moves both segment endpoints by d
func (c *Capsule) Translate(d Vec3) {
	c.Start = V3Add(c.Start, d)
	c.End = V3Add(c.End, d)
}

// Center returns the segment midpoint
func (c Capsule) Center() Vec3 {
	return V3Lerp(c.Start, c.End, 0.5)
}

// ContainsPoint reports whether p lies within the capsule volume
func (c Capsule) ContainsPoint(p Vec3) bool {
	return SegmentPointDistSq(c.Start, c.End, p) <= c.Radius*c.Radius
}
