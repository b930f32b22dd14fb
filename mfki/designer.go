package mfki

import (
	"github.com/kmdouglass/udesigner/design"
)

type designer struct{}

// Designer returns the multifocal Kohler integrator design type.
func Designer() design.Designer {
	return designer{}
}

func (designer) Name() string { return "mfki" }

func (designer) Title() string { return "Multifocal Kohler Integrator" }

func (designer) Defaults() map[string]any { return Defaults().Flatten() }

func (designer) Compute(raw map[string]any) (*design.Outcome, error) {
	parsed, err := design.ParseRaw(raw)
	if err != nil {
		return nil, err
	}

	in, err := ParseInputs(parsed)
	if err != nil {
		return nil, err
	}

	results := ComputeResults(in)

	return &design.Outcome{
		Inputs:     parsed,
		Results:    results,
		Order:      ResultOrder,
		Violations: ValidateResults(in, results),
	}, nil
}
