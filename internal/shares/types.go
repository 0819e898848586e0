// Package shares reduces SEC "shares outstanding" disclosures to the smallest
// and largest observations reported after a fiscal-year cutoff.
//
// Two inputs are supported. ProcessConcept takes the raw company-concept
// payload from the filings API and filters, reduces and title-cases it.
// ProcessDefault takes an already reduced dataset (the bundled data.json) and
// only re-applies the name formatting.
package shares

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCutoff is the fiscal year observations must be strictly after.
const DefaultCutoff = 2020

// Observation is one disclosed value for a fiscal year.
type Observation struct {
	// FY is the fiscal year the value was reported for.
	FY int

	// Val is the disclosed share count, kept exact.
	Val decimal.Decimal
}

type observationJSON struct {
	Val json.Number `json:"val"`
	FY  int         `json:"fy"`
}

// MarshalJSON writes Val as a bare JSON number, not a quoted string.
func (o Observation) MarshalJSON() ([]byte, error) {
	return json.Marshal(observationJSON{Val: json.Number(o.Val.String()), FY: o.FY})
}

// String returns "<val> (FY<fy>)".
func (o Observation) String() string {
	return fmt.Sprintf("%s (FY%d)", o.Val.String(), o.FY)
}

// Extrema is the display-ready reduction of a disclosure set.
// Its JSON form matches the bundled data.json layout.
type Extrema struct {
	EntityName string      `json:"entityName"`
	Max        Observation `json:"max"`
	Min        Observation `json:"min"`
}
