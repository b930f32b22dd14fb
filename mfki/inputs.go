// Package mfki implements the design equations and validation rules for a
// multifocal Kohler integrator.
//
// The equations follow D. Mahecic, et al., Nature Methods 17, 726-733 (2020).
package mfki

import (
	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

// Inputs are the physical parameters of a multifocal Kohler integrator, one
// field per dotted input key.
type Inputs struct {
	MLAFocalLength         design.Quantity
	MLAPitch               design.Quantity
	MLAExFocalLength       design.Quantity
	MLAExPitch             design.Quantity
	FourierLensFocal       design.Quantity
	CollimatingLensFocal   design.Quantity
	TelescopeMagnification float64
	SourceRadius           design.Quantity
	SourceDivergence       design.Quantity
	SourceWavelength       design.Quantity
	SystemMagnification    float64
}

// Defaults returns a physically reasonable example integrator built around a
// 300 um pitch, 4.78 mm focal length microlens array.
func Defaults() Inputs {
	return Inputs{
		MLAFocalLength:         design.Quantity{Value: 4.78, Units: units.Millimeter},
		MLAPitch:               design.Quantity{Value: 300.0, Units: units.Micrometer},
		MLAExFocalLength:       design.Quantity{Value: 6.0, Units: units.Millimeter},
		MLAExPitch:             design.Quantity{Value: 222.0, Units: units.Micrometer},
		FourierLensFocal:       design.Quantity{Value: 300, Units: units.Millimeter},
		CollimatingLensFocal:   design.Quantity{Value: 60.0, Units: units.Millimeter},
		TelescopeMagnification: 0.25,
		SourceRadius:           design.Quantity{Value: 1.0, Units: units.Millimeter},
		SourceDivergence:       design.Quantity{Value: 100.0, Units: units.Milliradian},
		SourceWavelength:       design.Quantity{Value: 0.488, Units: units.Micrometer},
		SystemMagnification:    116.0,
	}
}

// ParseInputs builds typed Inputs from a parsed flat mapping. An absent
// required key fails with *design.MissingInputError.
func ParseInputs(data map[string]any) (Inputs, error) {
	var in Inputs
	var err error

	if in.MLAFocalLength, err = design.QuantityOf(data, "mla.focal_length"); err != nil {
		return Inputs{}, err
	}
	if in.MLAPitch, err = design.QuantityOf(data, "mla.pitch"); err != nil {
		return Inputs{}, err
	}
	if in.MLAExFocalLength, err = design.QuantityOf(data, "mla_ex.focal_length"); err != nil {
		return Inputs{}, err
	}
	if in.MLAExPitch, err = design.QuantityOf(data, "mla_ex.pitch"); err != nil {
		return Inputs{}, err
	}
	if in.FourierLensFocal, err = design.QuantityOf(data, "fourier_lens.focal_length"); err != nil {
		return Inputs{}, err
	}
	if in.CollimatingLensFocal, err = design.QuantityOf(data, "collimating_lens.focal_length"); err != nil {
		return Inputs{}, err
	}
	if in.TelescopeMagnification, err = design.Number(data, "telescope.magnification"); err != nil {
		return Inputs{}, err
	}
	if in.SourceRadius, err = design.QuantityOf(data, "source.radius"); err != nil {
		return Inputs{}, err
	}
	if in.SourceDivergence, err = design.QuantityOf(data, "source.divergence"); err != nil {
		return Inputs{}, err
	}
	if in.SourceWavelength, err = design.QuantityOf(data, "source.wavelength"); err != nil {
		return Inputs{}, err
	}
	if in.SystemMagnification, err = design.Number(data, "system.magnification"); err != nil {
		return Inputs{}, err
	}

	return in, nil
}

// Flatten reproduces the flat dotted-key mapping with units.Unit values.
func (in Inputs) Flatten() map[string]any {
	return map[string]any{
		"mla.focal_length":                    in.MLAFocalLength.Value,
		"mla.focal_length.units":              in.MLAFocalLength.Units,
		"mla.pitch":                           in.MLAPitch.Value,
		"mla.pitch.units":                     in.MLAPitch.Units,
		"mla_ex.focal_length":                 in.MLAExFocalLength.Value,
		"mla_ex.focal_length.units":           in.MLAExFocalLength.Units,
		"mla_ex.pitch":                        in.MLAExPitch.Value,
		"mla_ex.pitch.units":                  in.MLAExPitch.Units,
		"fourier_lens.focal_length":           in.FourierLensFocal.Value,
		"fourier_lens.focal_length.units":     in.FourierLensFocal.Units,
		"collimating_lens.focal_length":       in.CollimatingLensFocal.Value,
		"collimating_lens.focal_length.units": in.CollimatingLensFocal.Units,
		"telescope.magnification":             in.TelescopeMagnification,
		"source.radius":                       in.SourceRadius.Value,
		"source.radius.units":                 in.SourceRadius.Units,
		"source.divergence":                   in.SourceDivergence.Value,
		"source.divergence.units":             in.SourceDivergence.Units,
		"source.wavelength":                   in.SourceWavelength.Value,
		"source.wavelength.units":             in.SourceWavelength.Units,
		"system.magnification":                in.SystemMagnification,
	}
}
