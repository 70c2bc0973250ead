package session

import (
	"net/url"
	"strconv"
	"strings"
)

// Query string keys of a persisted search.
const (
	keyProfession = "job"
	keyPostalCode = "plz"
	keyRadius     = "radius"
	keyJobID      = "jobid"
)

// Params is the bookmarkable part of a session. Zero values mean "not set".
type Params struct {
	Profession string
	PostalCode string
	RadiusKm   int
	JobID      string
}

// ParseParams reads Params from a query string. A radius that is not a
// positive integer is treated as not set.
func ParseParams(v url.Values) Params {
	p := Params{
		Profession: strings.TrimSpace(v.Get(keyProfession)),
		PostalCode: strings.TrimSpace(v.Get(keyPostalCode)),
		JobID:      strings.TrimSpace(v.Get(keyJobID)),
	}
	if km, err := strconv.Atoi(strings.TrimSpace(v.Get(keyRadius))); err == nil && km > 0 {
		p.RadiusKm = km
	}
	return p
}

// Values encodes the set fields of p.
func (p Params) Values() url.Values {
	v := url.Values{}
	if p.Profession != "" {
		v.Set(keyProfession, p.Profession)
	}
	if p.PostalCode != "" {
		v.Set(keyPostalCode, p.PostalCode)
	}
	if p.RadiusKm > 0 {
		v.Set(keyRadius, strconv.Itoa(p.RadiusKm))
	}
	if p.JobID != "" {
		v.Set(keyJobID, p.JobID)
	}
	return v
}

// Encode returns p as a URL query string.
func (p Params) Encode() string {
	return p.Values().Encode()
}
