package mfki

import (
	"math"

	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

// ResultOrder is the fixed display order of the formula catalog, with
// dependencies appearing before their dependents.
var ResultOrder = []string{
	"flat_field_size",
	"flat_field_size_sample_plane",
	"excitation_spot_size",
	"excitation_spot_size_sample_plane",
	"beam_radius_mla",
	"homogeneity",
	"fresnel_number",
}

// FlatFieldSize calculates the flat field size at the excitation microlens
// array.
func FlatFieldSize(in Inputs) design.Result {
	u := units.Millimeter
	value := in.FourierLensFocal.SI() * in.MLAPitch.SI() / in.MLAFocalLength.SI() / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Flat field size at excitation MLA",
		Equation: `\( S = \frac{f_{FL} \times p}{f} \)`,
	}
}

// FlatFieldSizeSamplePlane calculates the flat field size at the sample
// plane.
func FlatFieldSizeSamplePlane(in Inputs) design.Result {
	u := units.Micrometer
	value := in.FourierLensFocal.SI() * in.MLAPitch.SI() / in.MLAFocalLength.SI() /
		in.SystemMagnification / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Flat field size at sample plane",
		Equation: `\( S = \frac{1}{M_{sys}} \frac{f_{FL} \times p}{f} \)`,
	}
}

// BeamRadiusFirstMLA computes the beam radius at the first integrator
// microlens array.
func BeamRadiusFirstMLA(in Inputs) design.Result {
	u := units.Millimeter
	value := (in.SourceRadius.SI() + in.CollimatingLensFocal.SI()*math.Tan(in.SourceDivergence.SI())) / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Beam radius at first integrator MLA",
		Equation: `\( R_{beam} = R_{source} + f_{CL} * \tan \left( \theta_{source} \right) \)`,
	}
}

// ExcitationSpotSize computes the spot size in the focal plane of the
// excitation microlens array.
func ExcitationSpotSize(in Inputs, beamRadius design.Result) design.Result {
	u := units.Micrometer
	rBeam := beamRadius.SI()

	f := in.MLAFocalLength.SI()
	fEx := in.MLAExFocalLength.SI()
	fFL := in.FourierLensFocal.SI()
	fCL := in.CollimatingLensFocal.SI()
	rSource := in.SourceRadius.SI()
	magTel := in.TelescopeMagnification

	value := (f*fEx/magTel/fFL/fCL*rSource + fEx*magTel/fFL*rBeam) / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Spot size in focal plane of excitation MLA",
		Equation: `\( r = \frac{f \times f_{ex}}{f_{FL} f_{CL} M_{tel}} R_{source} + \frac{f_{ex} M_{tel}}{f_{FL}} R_{beam} \)`,
	}
}

// ExcitationSpotSizeSamplePlane computes the spot size in the sample plane.
func ExcitationSpotSizeSamplePlane(in Inputs, spotSize design.Result) design.Result {
	u := units.Micrometer
	value := spotSize.SI() / in.SystemMagnification / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Spot size in sample plane",
		Equation: `\( r_{sample} = \frac{1}{M_{sys}} \left( \frac{f \times f_{ex}}{f_{FL} f_{CL} M_{tel}} R_{source} + \frac{f_{ex} M_{tel}}{f_{FL}} R_{beam} \right) \)`,
	}
}

// Homogeneity computes the number of lenslets spanned by the beam, which
// governs the uniformity of the flat field.
func Homogeneity(in Inputs, beamRadius design.Result) design.Result {
	value := beamRadius.SI() / in.MLAPitch.SI()

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Homogeneity",
		Equation: `\( B = \frac{R_{beam}}{p} \)`,
	}
}

// FresnelNumber computes the Fresnel number of a single lenslet.
func FresnelNumber(in Inputs) design.Result {
	p := in.MLAPitch.SI()
	value := p * p / 4 / in.MLAFocalLength.SI() / in.SourceWavelength.SI()

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Fresnel number",
		Equation: `\( F = \frac{p^2}{4 f \lambda} \)`,
	}
}

// ComputeResults evaluates every formula in dependency order and returns the
// full result set keyed by formula identifier.
func ComputeResults(in Inputs) design.ResultSet {
	beamRadius := BeamRadiusFirstMLA(in)
	spotSize := ExcitationSpotSize(in, beamRadius)

	return design.ResultSet{
		"flat_field_size":                   FlatFieldSize(in),
		"flat_field_size_sample_plane":      FlatFieldSizeSamplePlane(in),
		"excitation_spot_size":              spotSize,
		"excitation_spot_size_sample_plane": ExcitationSpotSizeSamplePlane(in, spotSize),
		"beam_radius_mla":                   beamRadius,
		"homogeneity":                       Homogeneity(in, beamRadius),
		"fresnel_number":                    FresnelNumber(in),
	}
}
