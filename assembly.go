package gearbox

import (
	"fmt"

	"github.com/soypat/sdf"
)

// Selection picks entities out of a registry namespace, either all of them
// in declaration order or an explicit key list.
type Selection struct {
	Namespace string
	All       bool
	Keys      []Ref
}

// Picked is one entity chosen by a selection, with the namespace it came
// from.
type Picked struct {
	Namespace string
	Entity    Entity
}

// Expand resolves selections into a flat entity sequence, preserving
// selection order. Selecting everything from an unknown namespace is an
// error; an empty namespace simply contributes nothing.
func (r *Registry) Expand(sels []Selection) ([]Picked, error) {
	var out []Picked
	for _, sel := range sels {
		if sel.All {
			sp := r.spaces[sel.Namespace]
			if sp == nil {
				return nil, fmt.Errorf("%w: no namespace %q", ErrMissingName, sel.Namespace)
			}
			for _, e := range sp.order {
				out = append(out, Picked{Namespace: sel.Namespace, Entity: e})
			}
			continue
		}
		for _, key := range sel.Keys {
			e, err := r.resolve(sel.Namespace, key)
			if err != nil {
				return nil, err
			}
			out = append(out, Picked{Namespace: sel.Namespace, Entity: e})
		}
	}
	return out, nil
}

// NamedSolid pairs a generated solid with its identity and preview colour.
type NamedSolid struct {
	Namespace string
	Name      string
	Solid     sdf.SDF3
	Colour    Colour
}

// BuildSelection generates every selected entity. Entities producing no
// geometry are skipped; entities that cannot generate geometry at all are
// an error.
func BuildSelection(reg *Registry, sels []Selection) ([]NamedSolid, error) {
	picked, err := reg.Expand(sels)
	if err != nil {
		return nil, err
	}
	var out []NamedSolid
	for _, p := range picked {
		solid, ok := p.Entity.(Solid)
		if !ok {
			return nil, fmt.Errorf("%s %q cannot generate geometry", p.Namespace, p.Entity.EntityName())
		}
		s, err := solid.Build()
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", p.Namespace, p.Entity.EntityName(), err)
		}
		if s == nil {
			continue
		}
		ns := NamedSolid{Namespace: p.Namespace, Name: p.Entity.EntityName(), Solid: s}
		if c, ok := p.Entity.(interface{ Colour() Colour }); ok {
			ns.Colour = c.Colour()
		}
		out = append(out, ns)
	}
	return out, nil
}

// Merge unions named solids into a single solid for a combined preview.
// It returns nil when nothing was selected.
func Merge(solids []NamedSolid) sdf.SDF3 {
	all := make([]sdf.SDF3, len(solids))
	for i, s := range solids {
		all[i] = s.Solid
	}
	return unionAll(all)
}
