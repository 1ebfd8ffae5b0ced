package nestedgeom

import "errors"

var (
	// ErrAlreadyNested indicates a nesting link endpoint is already occupied:
	// either the inner unit already has an outer level, or the outer unit
	// already contains an inner one. Links are never overwritten.
	ErrAlreadyNested = errors.New("nestedgeom: unit already nested")
	// ErrCyclicNesting indicates the requested link would make the Up/Down
	// chain revisit a node.
	ErrCyclicNesting = errors.New("nestedgeom: nesting would form a cycle")
	// ErrLatticeNotCell indicates a lattice spec was attached to a unit that
	// is not a nested cell.
	ErrLatticeNotCell = errors.New("nestedgeom: lattice spec requires a nested cell")
	// ErrNameNotFound indicates the Registry has no number for a name.
	ErrNameNotFound = errors.New("nestedgeom: name not found in system definition")
	// ErrNilUnit indicates a nil *Unit operand.
	ErrNilUnit = errors.New("nestedgeom: nil unit")
	// ErrNilRegistry indicates MCNP rendering was invoked without a Registry.
	ErrNilRegistry = errors.New("nestedgeom: nil registry")
)
