package gearbox

import (
	"errors"
	"sort"
	"testing"
)

func TestShaftStyle(t *testing.T) {
	p, err := ShaftStyle("bt3mm")
	if err != nil {
		t.Fatal(err)
	}
	if p.Diameter != 3 || p.Segments != 6 || !p.Outer {
		t.Errorf("bt3mm = %+v", p)
	}
	// the hexagonal 4mm bore is deliberately undersized
	p, _ = ShaftStyle("bt4mm")
	if p.Diameter != 3.9 {
		t.Errorf("bt4mm diameter = %g, want 3.9", p.Diameter)
	}
	if _, err := ShaftStyle("bt9mm"); !errors.Is(err, ErrMissingName) {
		t.Errorf("unknown style err = %v, want ErrMissingName", err)
	}
}

func TestShaftStyleNames(t *testing.T) {
	names := ShaftStyleNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	want := map[string]bool{"bt2mm": true, "bt3mm": true, "bt4mm": true, "bt5mm": true, "bt5mmo": true}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected style %q", n)
		}
	}
}
