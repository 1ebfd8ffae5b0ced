// Package nestedgeom models tally units: specifications of where, inside a
// nested hierarchy of cells, surfaces, and universes, a tally (measurement)
// is taken. A unit is built once, then rendered any number of times into
// two textual forms — a human-readable comment and the MCNP card fragment
// consumed by the simulation input deck.
//
// What:
//
//   - Unit is a node in a doubly-linked nesting chain: Up points one level
//     outward (toward the real world), Down points one level inward.
//   - Leaf kinds reference a surface, cell, nested cell (optionally with a
//     lattice selector), or universe by name.
//   - Union merges sibling alternatives ("any one of these"); Vector merges
//     independent bindings ("one tally per element" — MCNP multiple-bin).
//   - LatticeSpec selects lattice elements of a lattice cell: LinearIndex,
//     AxisRange, or CoordList.
//   - Comment() renders nested English; MCNP(reg) renders the wire format,
//     translating names to numbers through the Registry collaborator.
//
// Why:
//
//   - Reactor tallies routinely target "this pin, in that assembly lattice
//     position, in this core universe" — nearly arbitrary nesting depth.
//   - Writing MCNP's angle-bracket nesting by hand is error-prone; here the
//     structure is built programmatically and rendered exactly once-correct.
//
// Construction rules:
//
//   - inner.Of(outer) links one level of nesting and always establishes the
//     Up/Down pair together; it returns the innermost node of the chain so
//     repeated calls compose left to right.
//   - Union/Vector are self-merging: merging into an existing combinator
//     appends to its member list instead of wrapping it again, so a fold
//     like a.Union(b).Union(c) yields one flat three-member union.
//   - Member kinds are deliberately not validated; MCNP itself is
//     permissive here, and the caller keeps that responsibility.
//
// Complexity:
//
//   - Of / Union / Vector: O(depth) / O(1) amortized. Memory: O(1).
//   - Comment / MCNP: O(total nodes), Memory: O(output length).
//
// Errors:
//
//   - ErrAlreadyNested: a link endpoint is already occupied.
//   - ErrCyclicNesting: the requested link would close an Up/Down cycle.
//   - ErrLatticeNotCell: lattice spec attached to a non-nested-cell unit.
//   - ErrNameNotFound: the Registry has no number for a referenced name.
//   - ErrNilUnit / ErrNilRegistry: nil operand.
package nestedgeom
