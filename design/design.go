// Package design holds the types shared by every design-type engine: input
// parsing over the flat dotted-key mapping, dimensioned quantities, formula
// results, and the renderer-facing outcome shape.
package design

import (
	"fmt"
	"strings"

	"github.com/kmdouglass/udesigner/units"
)

// UnitsSuffix marks the sibling key that names the unit of a dimensioned
// quantity, e.g. "grating.period.units" for "grating.period".
const UnitsSuffix = ".units"

// Quantity pairs a raw numeric value with the unit it was expressed in.
type Quantity struct {
	Value float64
	Units units.Unit
}

// SI returns the value normalized into SI base units.
func (q Quantity) SI() float64 {
	return units.Convert(q.Value, q.Units)
}

// In converts the quantity into a display unit.
func (q Quantity) In(u units.Unit) float64 {
	return q.SI() / u.Factor()
}

// Result is the output of one design formula: a numeric value in a chosen
// display unit, a human-readable name, and a typeset equation string. The
// equation is documentation for the rendered report only; it plays no part in
// computation.
type Result struct {
	Value    float64    `json:"value"`
	Units    units.Unit `json:"units,omitempty"`
	Name     string     `json:"name"`
	Equation string     `json:"equation"`
}

// SI returns the result's value normalized into SI base units.
func (r Result) SI() float64 {
	return units.Convert(r.Value, r.Units)
}

// ResultSet maps formula identifiers to their Results for one design type.
type ResultSet map[string]Result

// Circle is one labeled circle of a geometric plot, in the plot's display
// unit.
type Circle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Label string  `json:"label"`
}

// CirclePlot is the numeric surface of a geometric relationship the report
// may render. The engine produces only these numbers; the rendering
// technology is the report's concern.
type CirclePlot struct {
	Title   string     `json:"title"`
	XLabel  string     `json:"x_label"`
	YLabel  string     `json:"y_label"`
	Units   units.Unit `json:"units"`
	Circles []Circle   `json:"circles"`
}

// Outcome carries everything a renderer needs for one computed design:
// parsed inputs, results in display order, violations in rule order, and the
// numeric geometry of any plots. All fields are plain serializable data.
type Outcome struct {
	Inputs     map[string]any        `json:"inputs"`
	Results    ResultSet             `json:"results"`
	Order      []string              `json:"order"`
	Violations []string              `json:"violations"`
	Plots      map[string]CirclePlot `json:"plots,omitempty"`
}

// Designer computes a full design outcome from a raw flat input mapping.
// Implementations exist per design type; the CLI and report renderer depend
// only on this interface.
type Designer interface {
	// Name is the short identifier used on the command line.
	Name() string

	// Title is the display name used in rendered documents.
	Title() string

	// Defaults returns the canonical example inputs as a flat mapping,
	// serializable verbatim to the input-file JSON format.
	Defaults() map[string]any

	// Compute parses the raw mapping, evaluates every formula, and runs the
	// validators. Parsing failures abort with an error; violations do not.
	Compute(raw map[string]any) (*Outcome, error)
}

// ParseRaw resolves every ".units" string value in a raw input mapping to a
// units.Unit. It returns a new mapping and never mutates its argument. An
// unrecognized unit name fails with *units.UnknownUnitError and no partial
// mapping.
func ParseRaw(data map[string]any) (map[string]any, error) {
	parsed := make(map[string]any, len(data))
	for key, value := range data {
		if strings.HasSuffix(key, UnitsSuffix) {
			if name, ok := value.(string); ok {
				u, err := units.Parse(name)
				if err != nil {
					return nil, err
				}
				parsed[key] = u
				continue
			}
		}
		parsed[key] = value
	}
	return parsed, nil
}

// MissingInputError reports a required input key absent from the mapping at
// typed-input construction time.
type MissingInputError struct {
	// Key is the dotted parameter name that was absent.
	Key string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %q", e.Key)
}

// Number extracts a numeric value from a parsed mapping. JSON decoding
// produces float64 values; defaults constructed in memory may hold ints.
func Number(data map[string]any, key string) (float64, error) {
	value, ok := data[key]
	if !ok {
		return 0, &MissingInputError{Key: key}
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("input %q: expected a number, got %T", key, value)
	}
}

// Integer extracts an integral value from a parsed mapping.
func Integer(data map[string]any, key string) (int, error) {
	v, err := Number(data, key)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// QuantityOf extracts a dimensioned quantity: the value under key and the
// unit under key + ".units".
func QuantityOf(data map[string]any, key string) (Quantity, error) {
	value, err := Number(data, key)
	if err != nil {
		return Quantity{}, err
	}
	unitsKey := key + UnitsSuffix
	raw, ok := data[unitsKey]
	if !ok {
		return Quantity{}, &MissingInputError{Key: unitsKey}
	}
	u, ok := raw.(units.Unit)
	if !ok {
		return Quantity{}, fmt.Errorf("input %q: expected a unit, got %T", unitsKey, raw)
	}
	return Quantity{Value: value, Units: u}, nil
}
