package nestedgeom

import "fmt"

// Of nests u one level inside outer, reading "u is in outer". It sets
// u.up = outer and outer.down = u as a single consistent pair, then
// returns the innermost node of the resulting chain, so repeated calls
// compose left to right into one growing chain addressed by its inner end.
//
// Of never overwrites an existing link: if u already has an outer level,
// or outer already contains an inner one, it fails with ErrAlreadyNested.
// A link that would make the chain revisit a node fails with
// ErrCyclicNesting.
//
// Complexity: O(depth of the combined chain).
func (u *Unit) Of(outer *Unit) (*Unit, error) {
	if u == nil || outer == nil {
		return nil, ErrNilUnit
	}
	if u.up != nil {
		return nil, fmt.Errorf("inner %s unit has an outer level: %w", u.kind, ErrAlreadyNested)
	}
	if outer.down != nil {
		return nil, fmt.Errorf("outer %s unit has an inner level: %w", outer.kind, ErrAlreadyNested)
	}
	// The new edge u→outer closes a cycle iff outer's outward chain
	// already reaches u.
	for n := outer; n != nil; n = n.up {
		if n == u {
			return nil, ErrCyclicNesting
		}
	}

	u.up = outer
	outer.down = u

	return u.Innermost(), nil
}

// Union merges right into u as a sibling alternative. If u is already a
// union, right is appended to its alternative list and u itself is
// returned; otherwise a new two-member union wrapping u and right is
// created. The left-flattening keeps a fold like a.Union(b).Union(c) one
// flat union, which the comma-joined comment rendering relies on.
//
// Member kinds are not validated; mixing cells with surfaces, or nesting
// combinators, is the caller's responsibility (MCNP is permissive here).
func (u *Unit) Union(right *Unit) (*Unit, error) {
	return u.merge(right, KindUnion)
}

// Vector merges right into u as an independent binding: each element of a
// vector becomes its own tally at this nesting position (MCNP multiple-bin
// format). Same flattening rule as Union; only the meaning differs.
func (u *Unit) Vector(right *Unit) (*Unit, error) {
	return u.merge(right, KindVector)
}

// merge implements the shared self-merging rule of Union and Vector.
func (u *Unit) merge(right *Unit, kind Kind) (*Unit, error) {
	if u == nil || right == nil {
		return nil, ErrNilUnit
	}
	if u.kind == kind {
		u.members = append(u.members, right)

		return u, nil
	}

	return &Unit{kind: kind, members: []*Unit{u, right}}, nil
}

// SetLattice attaches spec to a nested-cell unit, replacing any previous
// spec. Every other kind fails with ErrLatticeNotCell: the wire format
// only admits lattice selectors on higher-level (nested) cells.
func (u *Unit) SetLattice(spec LatticeSpec) error {
	if u == nil {
		return ErrNilUnit
	}
	if u.kind != KindNestedCell {
		return fmt.Errorf("%s unit: %w", u.kind, ErrLatticeNotCell)
	}
	u.lat = spec

	return nil
}

// Innermost follows Down links to the inner end of the chain.
func (u *Unit) Innermost() *Unit {
	n := u
	for n.down != nil {
		n = n.down
	}

	return n
}

// Outermost follows Up links to the outer end of the chain.
func (u *Unit) Outermost() *Unit {
	n := u
	for n.up != nil {
		n = n.up
	}

	return n
}
