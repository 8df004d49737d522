package gearbox

import (
	"fmt"
	"sort"

	"github.com/HouJingChen99/gearbox-4/obj"
)

// shaftStyles holds the bore parameters for the supported brass tube
// shafts, keyed by style name. All bores grip the tube for 2mm at each end
// and open up in the middle so printing flaws cannot jam the tube. The
// "o" suffixed styles use an octagonal bore for a slightly looser fit.
var shaftStyles = map[string]obj.SleeveParams{
	"bt2mm": {Diameter: 2, Segments: 8, Outer: true, Chamfer: 0.3, GripLength: 2, Enlarge: 1.6},
	"bt3mm": {Diameter: 3, Segments: 6, Outer: true, Chamfer: 0.3, GripLength: 2, Enlarge: 1.6},
	// a nominal 4 prints too loose on a hexagonal bore
	"bt4mm":  {Diameter: 3.9, Segments: 6, Outer: true, Chamfer: 0.3, GripLength: 2, Enlarge: 1.6},
	"bt5mm":  {Diameter: 5, Segments: 6, Outer: true, Chamfer: 0.3, GripLength: 2, Enlarge: 1.6},
	"bt5mmo": {Diameter: 5, Segments: 8, Outer: true, Chamfer: 0.3, GripLength: 2, Enlarge: 1.6},
}

// ShaftStyle returns the bore parameters of a named brass tube shaft. The
// caller fills in Base and Top before generating the sleeve.
func ShaftStyle(name string) (obj.SleeveParams, error) {
	p, ok := shaftStyles[name]
	if !ok {
		return obj.SleeveParams{}, fmt.Errorf("%w: shaft style %q", ErrMissingName, name)
	}
	return p, nil
}

// ShaftStyleNames returns the known shaft style names, sorted.
func ShaftStyleNames() []string {
	names := make([]string, 0, len(shaftStyles))
	for name := range shaftStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
