package gearbox

import (
	"fmt"

	"github.com/soypat/sdf"
)

// Namespace names used by the entity constructors. Selections and indexed
// references are always relative to one of these.
const (
	NSGearStyle = "gearstyle"
	NSPlate     = "plate"
	NSAxle      = "axle"
	NSGearPair  = "gearpair"
	NSComponent = "axlecomp"
	NSPillar    = "pillar"
	NSExtra     = "extrapart"
)

// Entity is anything declarable into a Registry.
type Entity interface {
	EntityName() string
}

// Solid is an entity that can generate geometry for itself. A nil solid
// with a nil error is a legitimate result meaning the entity has no
// geometry of its own.
type Solid interface {
	Entity
	Build() (sdf.SDF3, error)
}

// Registry holds every declared entity of one assembly, partitioned into
// namespaces. Within a namespace entities are unique by name and keep their
// declaration order, so they can be referenced by index as well.
//
// A Registry is not safe for concurrent declaration. Once Freeze is called
// the entity graph is immutable and generation of disjoint entities may
// proceed from multiple goroutines, except that components sharing lazily
// derived pad heights must not be generated concurrently.
type Registry struct {
	spaces map[string]*namespace
	frozen bool
}

type namespace struct {
	byName map[string]Entity
	order  []Entity
}

// NewRegistry returns an empty registry ready for the declaration pass.
func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]*namespace)}
}

// register files e under ns/name. Duplicate names and post-Freeze
// declarations are hard errors.
func (r *Registry) register(ns, name string, e Entity) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot declare %s %q", ErrFrozen, ns, name)
	}
	if name == "" {
		return fmt.Errorf("%s declared without a name", ns)
	}
	sp := r.spaces[ns]
	if sp == nil {
		sp = &namespace{byName: make(map[string]Entity)}
		r.spaces[ns] = sp
	}
	if _, ok := sp.byName[name]; ok {
		return fmt.Errorf("%w: %s %q", ErrDuplicate, ns, name)
	}
	sp.byName[name] = e
	sp.order = append(sp.order, e)
	return nil
}

// Freeze ends the declaration pass. Further declarations fail with
// ErrFrozen.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Len returns the number of entities declared in a namespace.
func (r *Registry) Len(ns string) int {
	if sp := r.spaces[ns]; sp != nil {
		return len(sp.order)
	}
	return 0
}

// Names returns the names declared in a namespace, in declaration order.
func (r *Registry) Names(ns string) []string {
	sp := r.spaces[ns]
	if sp == nil {
		return nil
	}
	names := make([]string, len(sp.order))
	for i, e := range sp.order {
		names[i] = e.EntityName()
	}
	return names
}

// Lookup is the tolerant query: it reports whether ns/name is declared
// without raising an error on a miss.
func (r *Registry) Lookup(ns, name string) (Entity, bool) {
	if sp := r.spaces[ns]; sp != nil {
		if e, ok := sp.byName[name]; ok {
			return e, true
		}
	}
	return nil, false
}

// refKind discriminates the three ways of referencing an entity.
type refKind int

const (
	refNone refKind = iota
	refName
	refIndex
	refHandle
)

// Ref references an entity within a namespace by direct handle, by name or
// by declaration index. The zero Ref references nothing; resolving it is an
// error.
type Ref struct {
	kind   refKind
	name   string
	index  int
	handle Entity
}

// ByName references an entity by its declared name.
func ByName(name string) Ref {
	return Ref{kind: refName, name: name}
}

// ByIndex references the i-th entity declared in a namespace, counting
// from 0.
func ByIndex(i int) Ref {
	return Ref{kind: refIndex, index: i}
}

// ByHandle references an entity directly, skipping the registry.
func ByHandle(e Entity) Ref {
	return Ref{kind: refHandle, handle: e}
}

// IsZero reports whether the reference references nothing.
func (ref Ref) IsZero() bool {
	return ref.kind == refNone
}

func (ref Ref) String() string {
	switch ref.kind {
	case refName:
		return fmt.Sprintf("%q", ref.name)
	case refIndex:
		return fmt.Sprintf("#%d", ref.index)
	case refHandle:
		return fmt.Sprintf("%q", ref.handle.EntityName())
	}
	return "<nil ref>"
}

// resolve returns the entity a reference points at within a namespace.
func (r *Registry) resolve(ns string, ref Ref) (Entity, error) {
	switch ref.kind {
	case refHandle:
		return ref.handle, nil
	case refName:
		if e, ok := r.Lookup(ns, ref.name); ok {
			return e, nil
		}
		return nil, fmt.Errorf("%w: %s %q", ErrMissingName, ns, ref.name)
	case refIndex:
		sp := r.spaces[ns]
		if sp == nil || ref.index < 0 || ref.index >= len(sp.order) {
			return nil, fmt.Errorf("%w: %s #%d with %d declared", ErrIndexRange, ns, ref.index, r.Len(ns))
		}
		return sp.order[ref.index], nil
	}
	return nil, fmt.Errorf("%w: empty reference into %s", ErrMissingName, ns)
}

// Plate resolves a plate reference.
func (r *Registry) Plate(ref Ref) (*Plate, error) {
	e, err := r.resolve(NSPlate, ref)
	if err != nil {
		return nil, err
	}
	p, ok := e.(*Plate)
	if !ok {
		return nil, fmt.Errorf("%s %s is a %T, not a plate", NSPlate, ref, e)
	}
	return p, nil
}

// Axle resolves an axle reference.
func (r *Registry) Axle(ref Ref) (*Axle, error) {
	e, err := r.resolve(NSAxle, ref)
	if err != nil {
		return nil, err
	}
	a, ok := e.(*Axle)
	if !ok {
		return nil, fmt.Errorf("%s %s is a %T, not an axle", NSAxle, ref, e)
	}
	return a, nil
}

// Style resolves a gear style reference.
func (r *Registry) Style(ref Ref) (*GearStyle, error) {
	e, err := r.resolve(NSGearStyle, ref)
	if err != nil {
		return nil, err
	}
	s, ok := e.(*GearStyle)
	if !ok {
		return nil, fmt.Errorf("%s %s is a %T, not a gear style", NSGearStyle, ref, e)
	}
	return s, nil
}

// Pair resolves a gear pair reference.
func (r *Registry) Pair(ref Ref) (*GearPair, error) {
	e, err := r.resolve(NSGearPair, ref)
	if err != nil {
		return nil, err
	}
	gp, ok := e.(*GearPair)
	if !ok {
		return nil, fmt.Errorf("%s %s is a %T, not a gear pair", NSGearPair, ref, e)
	}
	return gp, nil
}

// Component resolves an axle component reference.
func (r *Registry) Component(ref Ref) (*Component, error) {
	e, err := r.resolve(NSComponent, ref)
	if err != nil {
		return nil, err
	}
	c, ok := e.(*Component)
	if !ok {
		return nil, fmt.Errorf("%s %s is a %T, not a component", NSComponent, ref, e)
	}
	return c, nil
}

// Pillar resolves a pillar reference.
func (r *Registry) Pillar(ref Ref) (*Pillar, error) {
	e, err := r.resolve(NSPillar, ref)
	if err != nil {
		return nil, err
	}
	p, ok := e.(*Pillar)
	if !ok {
		return nil, fmt.Errorf("%s %s is a %T, not a pillar", NSPillar, ref, e)
	}
	return p, nil
}

// Extra resolves an extra part reference.
func (r *Registry) Extra(ref Ref) (Entity, error) {
	return r.resolve(NSExtra, ref)
}
