// Package nestedgeom core types: the Unit node, its Kind tag, the leaf
// constructors, and the Registry lookup contract.
package nestedgeom

import "fmt"

// Kind tags the closed set of Unit variants.
type Kind uint8

const (
	// KindSurface references a surface of the system definition by name.
	KindSurface Kind = iota
	// KindCell references a low-level cell by name.
	KindCell
	// KindNestedCell references a higher-level cell (closer to the real
	// world) by name; only this kind may carry a LatticeSpec.
	KindNestedCell
	// KindUniverse references a universe by name.
	KindUniverse
	// KindUnion merges sibling alternatives: any one satisfies the level.
	KindUnion
	// KindVector merges independent bindings: one tally per element
	// (MCNP multiple-bin format).
	KindVector
)

// kindNames is indexed by Kind for String and error messages.
var kindNames = [...]string{"surface", "cell", "nested cell", "universe", "union", "vector"}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Unit is one level of a nested tally specification.
//
// Units form a simple doubly-linked path: up points one level outward
// (toward the real world), down one level inward. Both links are set only
// by Of, always as a consistent pair, and never overwritten. Leaf kinds
// carry a name; combinator kinds carry an ordered member list that grows
// only through Union/Vector merging.
type Unit struct {
	kind Kind

	// name identifies the surface/cell/universe in the system definition.
	// Empty for combinator kinds.
	name string

	// lat is the optional lattice selector; KindNestedCell only.
	lat LatticeSpec

	// members is the ordered alternative/element list; combinator kinds only.
	members []*Unit

	up   *Unit
	down *Unit
}

// Surf returns a unit referencing the named surface.
func Surf(name string) *Unit {
	return &Unit{kind: KindSurface, name: name}
}

// Cell returns a unit referencing the named low-level cell.
func Cell(name string) *Unit {
	return &Unit{kind: KindCell, name: name}
}

// UCell returns a unit referencing the named higher-level cell, optionally
// restricted to the lattice elements selected by spec (nil means the whole
// cell). Only this constructor accepts a lattice spec; see SetLattice.
func UCell(name string, spec LatticeSpec) *Unit {
	return &Unit{kind: KindNestedCell, name: name, lat: spec}
}

// Univ returns a unit referencing the named universe.
func Univ(name string) *Unit {
	return &Unit{kind: KindUniverse, name: name}
}

// NewUnion returns a union of the given units. The head/tail split keeps
// the "at least one member" invariant structural. Members must be non-nil.
func NewUnion(first *Unit, rest ...*Unit) *Unit {
	return &Unit{kind: KindUnion, members: append([]*Unit{first}, rest...)}
}

// NewVector returns a vector of the given units. The head/tail split keeps
// the "at least one member" invariant structural. Members must be non-nil.
func NewVector(first *Unit, rest ...*Unit) *Unit {
	return &Unit{kind: KindVector, members: append([]*Unit{first}, rest...)}
}

// Kind reports the unit's variant.
func (u *Unit) Kind() Kind { return u.kind }

// Name returns the referenced name; empty for combinator kinds.
func (u *Unit) Name() string { return u.name }

// Lattice returns the attached lattice spec, or nil.
func (u *Unit) Lattice() LatticeSpec { return u.lat }

// Members returns a copy of the combinator member list; nil for leaf kinds.
func (u *Unit) Members() []*Unit {
	if u.members == nil {
		return nil
	}
	out := make([]*Unit, len(u.members))
	copy(out, u.members)

	return out
}

// Up returns the next-outer nesting level, or nil at the outermost end.
func (u *Unit) Up() *Unit { return u.up }

// Down returns the unit nested directly inside this one, or nil at the
// innermost end.
func (u *Unit) Down() *Unit { return u.down }

// Registry translates names into the numeric identifiers of the external
// system definition. Every lookup fails with an error satisfying
// errors.Is(err, ErrNameNotFound) when the name is unknown; MCNP rendering
// propagates that error unmodified and never substitutes a default.
type Registry interface {
	SurfaceNum(name string) (int, error)
	CellNum(name string) (int, error)
	UniverseNum(name string) (int, error)
}

// MapRegistry is a map-backed Registry, convenient for tests and for
// callers whose system definition is already resolved to numbers.
// A nil map is simply empty.
type MapRegistry struct {
	Surfaces  map[string]int
	Cells     map[string]int
	Universes map[string]int
}

// SurfaceNum implements Registry.
func (r MapRegistry) SurfaceNum(name string) (int, error) {
	return lookup(r.Surfaces, "surface", name)
}

// CellNum implements Registry.
func (r MapRegistry) CellNum(name string) (int, error) {
	return lookup(r.Cells, "cell", name)
}

// UniverseNum implements Registry.
func (r MapRegistry) UniverseNum(name string) (int, error) {
	return lookup(r.Universes, "universe", name)
}

// lookup resolves name in m, wrapping ErrNameNotFound with the namespace.
func lookup(m map[string]int, namespace, name string) (int, error) {
	num, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", namespace, name, ErrNameNotFound)
	}

	return num, nil
}
