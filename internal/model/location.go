package model

import "math"

// Vec3 - позиция или направление в мире арены.
// Value type, передаётся по значению.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Length возвращает длину вектора.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector, or zero for a zero vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance возвращает расстояние до другой точки.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// DistanceSquared возвращает квадрат расстояния (без sqrt для hot path).
func (v Vec3) DistanceSquared(o Vec3) float64 {
	d := v.Sub(o)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// MoveTowards steps from v to target by at most step, never overshooting.
func (v Vec3) MoveTowards(target Vec3, step float64) Vec3 {
	d := target.Sub(v)
	dist := d.Length()
	if dist <= step || dist == 0 {
		return target
	}
	return v.Add(d.Scale(step / dist))
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// DistanceToSegment returns the distance from v to the segment [a, b].
func (v Vec3) DistanceToSegment(a, b Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return v.Distance(a)
	}
	t := v.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return v.Distance(a.Add(ab.Scale(t)))
}
