package models

// Place is a locality identified by its postal code. Several places can share
// one postal code; coordinates are averaged over all source rows of a
// (postal code, name) pair.
type Place struct {
	Name       string  `json:"city"`
	PostalCode string  `json:"zip"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
}

// RadiusPlace is a place as returned by the radius search.
type RadiusPlace struct {
	PostalCode string  `json:"plz"`
	City       string  `json:"city"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
}

// RadiusResult lists the source postal code and every place within the radius.
type RadiusResult struct {
	PostalCode string        `json:"plz"`
	RadiusKm   int           `json:"radiusKm"`
	Count      int           `json:"count"`
	Results    []RadiusPlace `json:"results"`
}

// PostalCodes returns the distinct postal codes of the result in order.
func (r *RadiusResult) PostalCodes() []string {
	seen := make(map[string]struct{}, len(r.Results)+1)
	codes := make([]string, 0, len(r.Results)+1)
	add := func(code string) {
		if code == "" {
			return
		}
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	add(r.PostalCode)
	for _, p := range r.Results {
		add(p.PostalCode)
	}
	return codes
}
