package gearbox

import "errors"

// Sentinel errors for the failure classes of declaration and generation.
// Concrete errors wrap these with entity names and context; match with
// errors.Is.
var (
	// ErrMissingName reports a reference to a name never declared.
	ErrMissingName = errors.New("gearbox: name not declared")
	// ErrDuplicate reports a second declaration under an existing name.
	ErrDuplicate = errors.New("gearbox: duplicate name")
	// ErrIndexRange reports an index reference past the declaration count.
	ErrIndexRange = errors.New("gearbox: index out of range")
	// ErrNoGearOnAxle reports a gear pair queried for an axle it does not
	// touch.
	ErrNoGearOnAxle = errors.New("gearbox: gear pair has no gear on axle")
	// ErrUnresolved reports a lazy dimension queried before the entity it
	// depends on was declared.
	ErrUnresolved = errors.New("gearbox: dependency not declared yet")
	// ErrPitchDomain reports gear tooth counts that cannot mesh at the
	// requested distance.
	ErrPitchDomain = errors.New("gearbox: no real tooth pitch exists")
	// ErrFrozen reports a declaration after Registry.Freeze.
	ErrFrozen = errors.New("gearbox: registry is frozen")
)
