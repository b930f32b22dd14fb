// Package dpm implements the design equations and validation rules for a
// diffraction phase microscope.
//
// The equations follow Bhaduri, et al., "Diffraction phase microscopy:
// principles and applications in materials and life sciences," Advances in
// Optics and Photonics 6, 57-119 (2014), with a few additions.
package dpm

import (
	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

// Inputs are the physical parameters of a diffraction phase microscope, one
// field per dotted input key. Constructing Inputs through ParseInputs
// guarantees every required key was present.
type Inputs struct {
	ObjectiveMagnification float64
	ObjectiveNA            float64
	CameraPixelSize        design.Quantity
	CameraHorizontalPixels int
	CameraVerticalPixels   int
	Wavelength             design.Quantity
	GratingPeriod          design.Quantity
	Lens1FocalLength       design.Quantity
	Lens1ClearAperture     design.Quantity
	Lens2FocalLength       design.Quantity
	Lens2ClearAperture     design.Quantity
	PinholeDiameter        design.Quantity
	CentralLobeSizeFactor  float64
}

// Defaults returns a physically reasonable example design: a 20x/0.4 NA
// objective, a 300 lp/mm grating, and a 512x512 camera with 5.2 um pixels.
func Defaults() Inputs {
	return Inputs{
		ObjectiveMagnification: 20,
		ObjectiveNA:            0.4,
		CameraPixelSize:        design.Quantity{Value: 5.2, Units: units.Micrometer},
		CameraHorizontalPixels: 512,
		CameraVerticalPixels:   512,
		Wavelength:             design.Quantity{Value: 0.64, Units: units.Micrometer},
		GratingPeriod:          design.Quantity{Value: 1000.0 / 300.0, Units: units.Micrometer},
		Lens1FocalLength:       design.Quantity{Value: 75, Units: units.Millimeter},
		Lens1ClearAperture:     design.Quantity{Value: 45.72, Units: units.Millimeter},
		Lens2FocalLength:       design.Quantity{Value: 300, Units: units.Millimeter},
		Lens2ClearAperture:     design.Quantity{Value: 45.72, Units: units.Millimeter},
		PinholeDiameter:        design.Quantity{Value: 30, Units: units.Micrometer},
		CentralLobeSizeFactor:  4,
	}
}

// ParseInputs builds typed Inputs from a parsed flat mapping. Every required
// key must be present; an absent key fails with *design.MissingInputError.
func ParseInputs(data map[string]any) (Inputs, error) {
	var in Inputs
	var err error

	if in.ObjectiveMagnification, err = design.Number(data, "objective.magnification"); err != nil {
		return Inputs{}, err
	}
	if in.ObjectiveNA, err = design.Number(data, "objective.numerical_aperture"); err != nil {
		return Inputs{}, err
	}
	if in.CameraPixelSize, err = design.QuantityOf(data, "camera.pixel_size"); err != nil {
		return Inputs{}, err
	}
	if in.CameraHorizontalPixels, err = design.Integer(data, "camera.horizontal_number_of_pixels"); err != nil {
		return Inputs{}, err
	}
	if in.CameraVerticalPixels, err = design.Integer(data, "camera.vertical_number_of_pixels"); err != nil {
		return Inputs{}, err
	}
	if in.Wavelength, err = design.QuantityOf(data, "light_source.wavelength"); err != nil {
		return Inputs{}, err
	}
	if in.GratingPeriod, err = design.QuantityOf(data, "grating.period"); err != nil {
		return Inputs{}, err
	}
	if in.Lens1FocalLength, err = design.QuantityOf(data, "lens_1.focal_length"); err != nil {
		return Inputs{}, err
	}
	if in.Lens1ClearAperture, err = design.QuantityOf(data, "lens_1.clear_aperture"); err != nil {
		return Inputs{}, err
	}
	if in.Lens2FocalLength, err = design.QuantityOf(data, "lens_2.focal_length"); err != nil {
		return Inputs{}, err
	}
	if in.Lens2ClearAperture, err = design.QuantityOf(data, "lens_2.clear_aperture"); err != nil {
		return Inputs{}, err
	}
	if in.PinholeDiameter, err = design.QuantityOf(data, "pinhole.diameter"); err != nil {
		return Inputs{}, err
	}
	if in.CentralLobeSizeFactor, err = design.Number(data, "misc.central_lobe_size_factor"); err != nil {
		return Inputs{}, err
	}

	return in, nil
}

// Flatten reproduces the flat dotted-key mapping. Unit values are
// units.Unit, which serialize to JSON by their symbolic name.
func (in Inputs) Flatten() map[string]any {
	return map[string]any{
		"objective.magnification":            in.ObjectiveMagnification,
		"objective.numerical_aperture":       in.ObjectiveNA,
		"camera.pixel_size":                  in.CameraPixelSize.Value,
		"camera.pixel_size.units":            in.CameraPixelSize.Units,
		"camera.horizontal_number_of_pixels": in.CameraHorizontalPixels,
		"camera.vertical_number_of_pixels":   in.CameraVerticalPixels,
		"light_source.wavelength":            in.Wavelength.Value,
		"light_source.wavelength.units":      in.Wavelength.Units,
		"grating.period":                     in.GratingPeriod.Value,
		"grating.period.units":               in.GratingPeriod.Units,
		"lens_1.focal_length":                in.Lens1FocalLength.Value,
		"lens_1.focal_length.units":          in.Lens1FocalLength.Units,
		"lens_1.clear_aperture":              in.Lens1ClearAperture.Value,
		"lens_1.clear_aperture.units":        in.Lens1ClearAperture.Units,
		"lens_2.focal_length":                in.Lens2FocalLength.Value,
		"lens_2.focal_length.units":          in.Lens2FocalLength.Units,
		"lens_2.clear_aperture":              in.Lens2ClearAperture.Value,
		"lens_2.clear_aperture.units":        in.Lens2ClearAperture.Units,
		"pinhole.diameter":                   in.PinholeDiameter.Value,
		"pinhole.diameter.units":             in.PinholeDiameter.Units,
		"misc.central_lobe_size_factor":      in.CentralLobeSizeFactor,
	}
}
