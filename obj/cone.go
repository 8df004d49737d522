package obj

import (
	"errors"

	"github.com/soypat/sdf"
)

// Cone returns a truncated cone from baseRadius at z=0 to topRadius at the
// given height. Facets of zero selects the default count.
func Cone(height, baseRadius, topRadius float64, facets int) (sdf.SDF3, error) {
	if height <= 0 {
		return nil, errors.New("cone needs a positive height")
	}
	if baseRadius <= 0 || topRadius <= 0 {
		return nil, errors.New("cone needs positive radii")
	}
	if facets == 0 {
		facets = defaultFacets
	}
	if facets < 3 {
		return nil, errors.New("cone needs at least 3 facets")
	}
	s := sdf.Loft3D(ngon(facets, baseRadius), ngon(facets, topRadius), height, 0)
	return elevate(s, height/2), nil
}
