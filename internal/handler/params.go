package handler

import (
	"strconv"
	"strings"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error" example:"failed to search locations"`
}

// queryInt parses an optional integer query value. ok is false when the value
// is present but not an integer.
func queryInt(raw string, def int) (value int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// splitList splits a comma separated query value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
