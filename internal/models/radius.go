package models

// DefaultRadiusKm is used when a search does not name a radius.
const DefaultRadiusKm = 25

// ValidRadiiKm are the radii for which the radius index is precomputed.
var ValidRadiiKm = []int{5, 10, 25, 50, 100}

// IsValidRadius reports whether km is one of ValidRadiiKm.
func IsValidRadius(km int) bool {
	for _, r := range ValidRadiiKm {
		if r == km {
			return true
		}
	}
	return false
}

// RadiusEntry is a precomputed adjacency edge: every postal code whose center
// lies within RadiusKm of the source. The source itself is never a target.
type RadiusEntry struct {
	SourcePostalCode  string
	RadiusKm          int
	TargetPostalCodes []string
}
