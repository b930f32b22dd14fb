// Package report turns a computed design outcome into a rendered design
// document. The document model is plain data: any templating technology could
// consume it without touching the equation engines.
package report

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

// InputRow is one input parameter as shown in the document.
type InputRow struct {
	Key   string
	Value any
	Units string
}

// ResultRow is one computed result as shown in the document.
type ResultRow struct {
	ID       string
	Name     string
	Value    float64
	Units    string
	Equation string
}

// Plot is one named, rendered plot.
type Plot struct {
	Name string
	SVG  template.HTML
}

// Document is the complete design document model.
type Document struct {
	// ID uniquely identifies this rendering.
	ID string

	// Title is the design type's display name.
	Title string

	// GeneratedAt is the rendering timestamp.
	GeneratedAt time.Time

	// MathJaxURL is the script source used to typeset equation strings.
	MathJaxURL string

	Inputs     []InputRow
	Results    []ResultRow
	Violations []string
	Plots      []Plot
}

// NewDocument assembles a document from a computed outcome. Inputs are listed
// in key order, results in the outcome's declared order, violations in rule
// order.
func NewDocument(title string, outcome *design.Outcome) Document {
	doc := Document{
		ID:          uuid.New().String(),
		Title:       title,
		GeneratedAt: time.Now(),
		Violations:  outcome.Violations,
	}

	keys := make([]string, 0, len(outcome.Inputs))
	for key := range outcome.Inputs {
		if strings.HasSuffix(key, design.UnitsSuffix) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		row := InputRow{Key: key, Value: outcome.Inputs[key]}
		if u, ok := outcome.Inputs[key+design.UnitsSuffix].(units.Unit); ok {
			row.Units = u.String()
		}
		doc.Inputs = append(doc.Inputs, row)
	}

	for _, id := range outcome.Order {
		result, ok := outcome.Results[id]
		if !ok {
			continue
		}
		doc.Results = append(doc.Results, ResultRow{
			ID:       id,
			Name:     result.Name,
			Value:    result.Value,
			Units:    result.Units.String(),
			Equation: result.Equation,
		})
	}

	names := make([]string, 0, len(outcome.Plots))
	for name := range outcome.Plots {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.Plots = append(doc.Plots, Plot{
			Name: name,
			SVG:  RenderCirclePlot(outcome.Plots[name]),
		})
	}

	return doc
}

// formatValue renders a numeric cell with up to six significant digits.
func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.6g", f)
	}
	return fmt.Sprintf("%v", v)
}
