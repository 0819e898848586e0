package shares

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ProcessConcept decodes a company-concept payload and reduces units.shares to
// its extremes over fiscal years strictly after cutoff.
//
// Entries whose fy is not an integral number or whose val is not a JSON number are
// skipped. An empty window returns *EmptyWindowError; any structural problem
// returns an error wrapping ErrMalformedPayload.
func ProcessConcept(body []byte, cutoff int) (result Extrema, err error) {
	defer recoverMalformed(&err)

	root, err := decodeObject(body)
	if err != nil {
		return Extrema{}, err
	}

	name, ok := root["entityName"].(string)
	if !ok {
		return Extrema{}, malformed("entityName missing or not a string")
	}

	units, ok := root["units"].(map[string]any)
	if !ok {
		return Extrema{}, malformed("units missing or not an object")
	}
	rawShares, ok := units["shares"].([]any)
	if !ok {
		return Extrema{}, malformed("units.shares missing or not an array")
	}

	window := Window(parseObservations(rawShares), cutoff)
	if len(window) == 0 {
		return Extrema{}, &EmptyWindowError{Cutoff: cutoff}
	}

	maxObs, minObs := Reduce(window)
	return Extrema{EntityName: TitleCase(name), Max: maxObs, Min: minObs}, nil
}

// ProcessDefault decodes a pre-reduced dataset of the form
// {"entityName", "max": {"val", "fy"}, "min": {"val", "fy"}}.
// Values are trusted as-is; only the entity name is reformatted.
func ProcessDefault(body []byte) (result Extrema, err error) {
	defer recoverMalformed(&err)

	root, err := decodeObject(body)
	if err != nil {
		return Extrema{}, err
	}

	name, ok := root["entityName"].(string)
	if !ok {
		return Extrema{}, malformed("entityName missing or not a string")
	}

	maxObs, err := requireObservation(root, "max")
	if err != nil {
		return Extrema{}, err
	}
	minObs, err := requireObservation(root, "min")
	if err != nil {
		return Extrema{}, err
	}

	return Extrema{EntityName: TitleCase(name), Max: maxObs, Min: minObs}, nil
}

// Window returns the observations with FY strictly greater than cutoff, in order.
func Window(obs []Observation, cutoff int) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if o.FY > cutoff {
			out = append(out, o)
		}
	}
	return out
}

// Reduce returns the largest and smallest observation in window.
// On ties the earliest element wins for both. window must not be empty.
func Reduce(window []Observation) (Observation, Observation) {
	maxObs, minObs := window[0], window[0]
	for _, o := range window[1:] {
		if o.Val.GreaterThan(maxObs.Val) {
			maxObs = o
		}
		if o.Val.LessThan(minObs.Val) {
			minObs = o
		}
	}
	return maxObs, minObs
}

// TitleCase lower-cases s, then upper-cases the first character of every
// space-separated token. Only the ASCII space separates tokens; empty tokens
// from repeated spaces are preserved.
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func decodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("trailing data after JSON value")
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, malformed("top-level value is not an object")
	}
	return root, nil
}

// parseObservations keeps entries with an integral fy and a numeric val.
func parseObservations(raw []any) []Observation {
	out := make([]Observation, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		o, ok := toObservation(entry)
		if !ok {
			continue
		}
		out = append(out, o)
	}
	return out
}

func requireObservation(root map[string]any, key string) (Observation, error) {
	entry, ok := root[key].(map[string]any)
	if !ok {
		return Observation{}, malformed("%s missing or not an object", key)
	}
	o, ok := toObservation(entry)
	if !ok {
		return Observation{}, malformed("%s.val and %s.fy must be numbers", key, key)
	}
	return o, nil
}

func toObservation(entry map[string]any) (Observation, bool) {
	fyNum, ok := entry["fy"].(json.Number)
	if !ok {
		return Observation{}, false
	}
	fy, ok := fiscalYear(fyNum)
	if !ok {
		return Observation{}, false
	}

	valNum, ok := entry["val"].(json.Number)
	if !ok {
		return Observation{}, false
	}
	val, err := decimal.NewFromString(valNum.String())
	if err != nil {
		return Observation{}, false
	}

	return Observation{FY: fy, Val: val}, true
}

// fiscalYear accepts any integral JSON number, including forms like 2021.0 or 2.021e3.
func fiscalYear(n json.Number) (int, bool) {
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	fy := d.IntPart()
	if !decimal.NewFromInt(fy).Equal(d) {
		return 0, false
	}
	return int(fy), true
}

func recoverMalformed(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrMalformedPayload, r)
	}
}
