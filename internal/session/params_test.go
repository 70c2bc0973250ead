package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected Params
	}{
		{
			name:     "all set",
			query:    "job=Koch&plz=8001&radius=10&jobid=abc",
			expected: Params{Profession: "Koch", PostalCode: "8001", RadiusKm: 10, JobID: "abc"},
		},
		{
			name:     "absent means not set",
			query:    "",
			expected: Params{},
		},
		{
			name:     "unparsable radius is not set",
			query:    "plz=8001&radius=far",
			expected: Params{PostalCode: "8001"},
		},
		{
			name:     "negative radius is not set",
			query:    "plz=8001&radius=-5",
			expected: Params{PostalCode: "8001"},
		},
		{
			name:     "values are trimmed",
			query:    "job=+Pflege+&plz=%208001",
			expected: Params{Profession: "Pflege", PostalCode: "8001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ParseParams(v))
		})
	}
}

func TestParams_Encode(t *testing.T) {
	assert.Equal(t, "", Params{}.Encode())
	assert.Equal(t, "plz=8001", Params{PostalCode: "8001"}.Encode())
	assert.Equal(t, "job=Koch&jobid=a&plz=8001&radius=25",
		Params{Profession: "Koch", PostalCode: "8001", RadiusKm: 25, JobID: "a"}.Encode())

	p := Params{Profession: "Software Entwickler", PostalCode: "8001", RadiusKm: 50, JobID: "x-1"}
	assert.Equal(t, p, ParseParams(p.Values()))
}
