package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Center returns the node's center as a planar vector.
func (n Node) Center() r2.Vec {
	return r2.Vec{X: n.X, Y: n.Y}
}

// Bounds returns the axis-aligned box [X-R, X+R] × [Y-R, Y+R].
func (n Node) Bounds() r2.Box {
	return r2.Box{
		Min: r2.Vec{X: n.X - n.R, Y: n.Y - n.R},
		Max: r2.Vec{X: n.X + n.R, Y: n.Y + n.R},
	}
}

// Valid reports whether the node has finite coordinates and a finite,
// non-negative radius.
func (n Node) Valid() bool {
	return finite(n.X) && finite(n.Y) && finite(n.R) && n.R >= 0
}

// Contains reports whether point p lies inside or on the circle c.
// The comparison is done on squared distances; no square root is taken.
func Contains(c Node, p r2.Vec) bool {
	return r2.Norm2(r2.Sub(p, c.Center())) <= c.R*c.R
}

// Covers reports whether n's center lies inside c, i.e. whether c's blast
// triggers n. This is the detonation rule behind every edge.
func Covers(c, n Node) bool {
	return Contains(c, n.Center())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
