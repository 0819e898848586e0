// Package cik resolves and normalizes SEC Central Index Keys.
//
// A CIK arrives as the raw value of the CIK query parameter. Resolve decides
// whether it is usable; Pad produces the fixed-width form the filings API
// expects. Values that fail the pattern are treated as absent, not as errors.
package cik

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// QueryKey is the query parameter carrying the requested identifier.
	QueryKey = "CIK"

	// Width is the canonical, zero-padded length of a CIK.
	Width = 10
)

//nolint:gochecknoglobals // Compiled once; read-only.
var pattern = regexp.MustCompile(`^[0-9]{1,10}$`)

// Resolve reports whether raw is a usable identifier (1 to 10 ASCII digits).
// The returned value is raw unchanged; padding happens at fetch time.
func Resolve(raw string) (string, bool) {
	if !pattern.MatchString(raw) {
		return "", false
	}
	return raw, true
}

// ResolveQuery reads the CIK parameter from values and applies Resolve.
// A missing key behaves like an invalid value.
func ResolveQuery(values url.Values) (string, bool) {
	if values == nil {
		return "", false
	}
	return Resolve(values.Get(QueryKey))
}

// Pad left-pads id with zeros to Width characters.
// Inputs already at or beyond Width are returned as-is.
func Pad(id string) string {
	if len(id) >= Width {
		return id
	}
	return strings.Repeat("0", Width-len(id)) + id
}
