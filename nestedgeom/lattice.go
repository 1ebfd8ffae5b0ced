package nestedgeom

import (
	"fmt"
	"strconv"
	"strings"
)

// LatticeSpec selects which elements of a lattice cell a tally covers.
// The variant set is closed: LinearIndex, AxisRange, and CoordList.
//
// A spec renders only its own inner text. The enclosing wire brackets
// ("[...]") and the comment connective ("-lat ") belong to the nested-cell
// node that carries the spec, not to the spec itself.
type LatticeSpec interface {
	// Comment returns the human-readable form, e.g. "linear idx 4".
	Comment() string
	// Wire returns the MCNP form without brackets, e.g. "4".
	Wire() string

	isLatticeSpec()
}

// LinearIndex selects a single lattice element by its linear (1-D) index.
type LinearIndex int

// Comment implements LatticeSpec.
func (l LinearIndex) Comment() string {
	return fmt.Sprintf("linear idx %d", int(l))
}

// Wire implements LatticeSpec.
func (l LinearIndex) Wire() string {
	return strconv.Itoa(int(l))
}

func (LinearIndex) isLatticeSpec() {}

// AxisRange selects lattice elements by an index range per axis. Each
// bound pair is [low, high]; the zero value [0, 0] conventionally means
// "axis unused", not "index zero only" — the convention is documented,
// never validated.
type AxisRange struct {
	X, Y, Z [2]int
}

// Comment implements LatticeSpec.
func (r AxisRange) Comment() string {
	return fmt.Sprintf("x range %d:%d, y range %d:%d, z range %d:%d",
		r.X[0], r.X[1], r.Y[0], r.Y[1], r.Z[0], r.Z[1])
}

// Wire implements LatticeSpec.
func (r AxisRange) Wire() string {
	return fmt.Sprintf("%d:%d %d:%d %d:%d",
		r.X[0], r.X[1], r.Y[0], r.Y[1], r.Z[0], r.Z[1])
}

func (AxisRange) isLatticeSpec() {}

// CoordList selects lattice elements by explicit (x, y, z) index triples.
// Construct it with Coords.
type CoordList struct {
	points [][3]int
}

// Coords returns a CoordList over the given triples. A single triple is
// stored as a one-element list, so the one-point and many-point forms
// normalize to the same shape. With no arguments the list holds the
// origin element (0, 0, 0).
func Coords(points ...[3]int) CoordList {
	if len(points) == 0 {
		return CoordList{points: [][3]int{{0, 0, 0}}}
	}
	pts := make([][3]int, len(points))
	copy(pts, points)

	return CoordList{points: pts}
}

// Points returns a copy of the stored triples.
func (c CoordList) Points() [][3]int {
	out := make([][3]int, len(c.points))
	copy(out, c.points)

	return out
}

// Comment implements LatticeSpec.
func (c CoordList) Comment() string {
	var b strings.Builder
	b.WriteString("coords")
	for i, p := range c.points {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " (%d, %d, %d)", p[0], p[1], p[2])
	}

	return b.String()
}

// Wire implements LatticeSpec.
func (c CoordList) Wire() string {
	var b strings.Builder
	for i, p := range c.points {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %d %d %d", p[0], p[1], p[2])
	}

	return b.String()
}

func (CoordList) isLatticeSpec() {}
