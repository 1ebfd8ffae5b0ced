// Package pyne is an in-memory toolkit for composing nuclear-simulation
// input, starting with nested-geometry tally units.
//
// 🚀 What is pyne/nestedgeom?
//
//	A small, dependency-light library that brings together:
//		• Tally units: reference surfaces, cells, and universes by name
//		• Nesting: chain units level by level with Of ("X inside Y")
//		• Combinators: Union (any alternative) and Vector (multiple bins)
//		• Lattice selectors: single index, axis ranges, coordinate lists
//		• Two renderers: human-readable comments and MCNP card fragments
//
// ✨ Why choose pyne?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict invariants – up/down links are always a consistent pair
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, errors.Is-friendly, no silent fixes
//
// Everything lives under one subpackage:
//
//	nestedgeom/ — tally-unit model, nesting/merge operations, renderers
//
// Quick ASCII example:
//
//	    surf 'A' ── in ── univ 'B' ── in ── cell 'C'
//
//	renders as the MCNP fragment " ( 1 < U=2 < 3)".
//
// Dive into nestedgeom's package documentation for the full rules,
// worked examples, and the error catalogue.
package pyne
