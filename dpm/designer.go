package dpm

import (
	"github.com/kmdouglass/udesigner/design"
)

// designer adapts the package-level functions to the design.Designer
// interface.
type designer struct{}

// Designer returns the diffraction phase microscope design type.
func Designer() design.Designer {
	return designer{}
}

func (designer) Name() string { return "dpm" }

func (designer) Title() string { return "Diffraction Phase Microscope" }

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
		Plots: map[string]design.CirclePlot{
			"lens_1_fourier_plane": FourierPlanePlot(results),
		},
	}, nil
}
