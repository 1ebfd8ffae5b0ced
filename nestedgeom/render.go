package nestedgeom

import (
	"strconv"
	"strings"
)

// Comment — human-readable rendering
//
// Description:
//
//	Comment walks the unit chain and produces nested English such as
//	" ( cell 'pin' in univ 'assembly' in cell 'core')". It is the
//	annotation counterpart of MCNP and never consults a Registry, so it
//	cannot fail.
//
// Rendering rules (shared with MCNP):
//  1. Each leaf renders its own text with a single leading space.
//  2. A union renders " union of (...)" with members comma-joined; a
//     vector renders " over (...)" the same way.
//  3. Boundary-only parenthesization: " (" opens at a node that has an
//     outer level but no inner one (the inner end of a multi-node chain);
//     ")" closes at a node that has an inner level but no outer one (the
//     outer end). A standalone node gets neither.
//  4. If the node has an outer level, " in" plus the outer level's own
//     rendering is appended (the outward walk).
//
// Rendering is read-only and idempotent; repeated calls on an unmodified
// chain return identical strings.
//
// Complexity: O(total nodes), Memory: O(output length).
func (u *Unit) Comment() string {
	if u == nil {
		return ""
	}
	var b strings.Builder
	u.commentInto(&b)

	return b.String()
}

// commentInto appends u's comment rendering to b.
func (u *Unit) commentInto(b *strings.Builder) {
	if u.up != nil && u.down == nil {
		b.WriteString(" (")
	}
	switch u.kind {
	case KindSurface:
		b.WriteString(" surf '")
		b.WriteString(u.name)
		b.WriteByte('\'')
	case KindCell, KindNestedCell:
		b.WriteString(" cell '")
		b.WriteString(u.name)
		b.WriteByte('\'')
		if u.kind == KindNestedCell && u.lat != nil {
			b.WriteString("-lat ")
			b.WriteString(u.lat.Comment())
		}
	case KindUniverse:
		b.WriteString(" univ '")
		b.WriteString(u.name)
		b.WriteByte('\'')
	case KindUnion:
		b.WriteString(" union of (")
		u.membersCommentInto(b)
		b.WriteByte(')')
	case KindVector:
		b.WriteString(" over (")
		u.membersCommentInto(b)
		b.WriteByte(')')
	}
	if u.up != nil {
		b.WriteString(" in")
		u.up.commentInto(b)
	}
	if u.down != nil && u.up == nil {
		b.WriteByte(')')
	}
}

// membersCommentInto comma-joins the full comment of each member. Every
// member's text starts with its own leading space, so "," yields ", ".
func (u *Unit) membersCommentInto(b *strings.Builder) {
	for i, m := range u.members {
		if i > 0 {
			b.WriteByte(',')
		}
		m.commentInto(b)
	}
}

// MCNP — wire-format rendering
//
// Description:
//
//	MCNP walks the unit chain exactly like Comment but emits the strict
//	MCNP tally syntax: numeric identifiers looked up through reg, " <" as
//	the outward connective, "U=" for universes, and "[...]"-bracketed
//	lattice selectors on nested cells. A union becomes a parenthesized
//	run of its members' tokens; a vector concatenates its members with no
//	separator at all — MCNP's own token boundaries (each member's leading
//	space) separate them, and the run expands into one tally per member.
//
// Errors:
//
//	Any failing Registry lookup aborts rendering; the lookup error is
//	propagated unmodified (errors.Is(err, ErrNameNotFound) for unknown
//	names) and the returned string is empty — never a partial fragment.
//
// Complexity: O(total nodes) lookups and writes, Memory: O(output length).
func (u *Unit) MCNP(reg Registry) (string, error) {
	if u == nil {
		return "", ErrNilUnit
	}
	if reg == nil {
		return "", ErrNilRegistry
	}
	var b strings.Builder
	if err := u.mcnpInto(&b, reg); err != nil {
		return "", err
	}

	return b.String(), nil
}

// mcnpInto appends u's wire rendering to b, stopping at the first
// Registry failure.
func (u *Unit) mcnpInto(b *strings.Builder, reg Registry) error {
	if u.up != nil && u.down == nil {
		b.WriteString(" (")
	}
	switch u.kind {
	case KindSurface:
		num, err := reg.SurfaceNum(u.name)
		if err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(num))
	case KindCell, KindNestedCell:
		num, err := reg.CellNum(u.name)
		if err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(num))
		if u.kind == KindNestedCell && u.lat != nil {
			b.WriteByte('[')
			b.WriteString(u.lat.Wire())
			b.WriteByte(']')
		}
	case KindUniverse:
		num, err := reg.UniverseNum(u.name)
		if err != nil {
			return err
		}
		b.WriteString(" U=")
		b.WriteString(strconv.Itoa(num))
	case KindUnion:
		b.WriteString(" (")
		if err := u.membersMCNPInto(b, reg); err != nil {
			return err
		}
		b.WriteByte(')')
	case KindVector:
		if err := u.membersMCNPInto(b, reg); err != nil {
			return err
		}
	}
	if u.up != nil {
		b.WriteString(" <")
		if err := u.up.mcnpInto(b, reg); err != nil {
			return err
		}
	}
	if u.down != nil && u.up == nil {
		b.WriteByte(')')
	}

	return nil
}

// membersMCNPInto concatenates the wire rendering of each member with no
// separator; each member's text carries its own leading space.
func (u *Unit) membersMCNPInto(b *strings.Builder, reg Registry) error {
	for _, m := range u.members {
		if err := m.mcnpInto(b, reg); err != nil {
			return err
		}
	}

	return nil
}
