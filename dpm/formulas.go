package dpm

import (
	"math"

	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

// ResultOrder is the fixed display order of the formula catalog. It is also a
// valid topological order: every formula appears after the formulas it
// depends on.
var ResultOrder = []string{
	"resolution",
	"minimum_resolution",
	"camera_diagonal",
	"maximum_pixel_size",
	"field_of_view_horizontal",
	"field_of_view_vertical",
	"maximum_grating_period",
	"fourier_plane_spacing",
	"fourier_plane_sizes",
	"minimum_lens_1_na",
	"minimum_lens_2_na",
	"lens_1_na",
	"lens_2_na",
	"minimum_4f_magnification",
	"4f_magnification",
	"system_magnification",
	"maximum_pinhole_diameter",
	"coupling_ratio",
}

// Resolution computes the radius of the Airy disk in the object space.
func Resolution(in Inputs) design.Result {
	u := units.Micrometer
	value := 1.22 * in.Wavelength.SI() / in.ObjectiveNA / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Resolution",
		Equation: `\( \Delta \rho = \frac{ 1.22 \lambda }{ \text{NA}_{obj} }\)`,
	}
}

// MinimumResolution computes the minimum radius of the Airy disk in the
// object space for a given grating and objective magnification.
func MinimumResolution(in Inputs) design.Result {
	u := units.Micrometer
	value := in.GratingPeriod.SI() / u.Factor() / 0.28 / in.ObjectiveMagnification

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Minimum resolution",
		Equation: `\( \Delta \rho \ge \frac{\Lambda}{0.28 M_{obj}}  \)`,
	}
}

// MaximumGratingPeriod computes the maximum period of the grating to ensure
// correct PSF sampling.
func MaximumGratingPeriod(in Inputs) design.Result {
	u := units.Micrometer
	value := in.Wavelength.SI() * in.ObjectiveMagnification / 3 / in.ObjectiveNA / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Maximum grating period",
		Equation: `\(\Lambda \le \frac{ \lambda M_{obj} }{3 \text{NA}_{obj}}\)`,
	}
}

// MaximumPixelSize computes the maximum pixel size that satisfies the
// sampling requirements given a grating period.
func MaximumPixelSize(in Inputs, mag4f design.Result) design.Result {
	u := units.Micrometer
	value := in.GratingPeriod.SI() * math.Abs(mag4f.Value) / 2.67 / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Maximum pixel size",
		Equation: `\( a \le \frac{ \Lambda |M_{4f}| }{ 2.67 }\)`,
	}
}

// FourierPlaneSpacing is the position of the first diffraction order in the
// Fourier plane with respect to the optics axis. This assumes the tangent of
// the diffracted angle is approximately equal to the angle itself.
func FourierPlaneSpacing(in Inputs) design.Result {
	u := units.Millimeter
	value := in.Lens1FocalLength.SI() * in.Wavelength.SI() / in.GratingPeriod.SI() / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Fourier plane spacing",
		Equation: `\( \Delta x = \frac{ f_1 \lambda }{ \Lambda } \)`,
	}
}

// FourierPlaneSizes computes the radial extent of the image spectra in the
// Fourier plane. This ignores the broadening effects of aberrations such as
// coma and assumes the Abbe sine condition is satisfied.
func FourierPlaneSizes(in Inputs) design.Result {
	u := units.Millimeter
	naImgSpace := in.ObjectiveNA / in.ObjectiveMagnification
	radius := naImgSpace * in.Lens1FocalLength.SI() / u.Factor()

	return design.Result{
		Value:    radius,
		Units:    u,
		Name:     "Radial extent of image spectra",
		Equation: `\( r = \text{NA}_{obj}' f_1 \)`,
	}
}

// Minimum4fMagnification computes the minimum magnification of the 4f system
// for sufficient PSF/fringe sampling.
func Minimum4fMagnification(in Inputs) design.Result {
	value := 2 * in.CameraPixelSize.SI() * (1/in.GratingPeriod.SI() + in.ObjectiveNA/in.Wavelength.SI()/in.ObjectiveMagnification)

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Minimum 4f magnification (abs. value)",
		Equation: `\( |M_{4f}| \ge 2a \left( \frac{1}{\Lambda} + \frac{ \text{NA}_{obj} }{ \lambda M_{obj} } \right) \)`,
	}
}

// Actual4fMagnification computes the signed magnification of the 4f system.
func Actual4fMagnification(in Inputs) design.Result {
	value := -in.Lens2FocalLength.SI() / in.Lens1FocalLength.SI()

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Actual 4f magnification",
		Equation: `\( -f_2 / f_1 \)`,
	}
}

// SystemMagnification computes the magnification of the entire system.
func SystemMagnification(in Inputs, mag4f design.Result) design.Result {
	value := -in.ObjectiveMagnification * mag4f.Value

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "System magnification",
		Equation: `\( M_{obj} M_{4f} \)`,
	}
}

// FieldOfViewHorizontal computes the horizontal field of view in the object
// space.
func FieldOfViewHorizontal(in Inputs, mag4f design.Result) design.Result {
	u := units.Micrometer
	value := float64(in.CameraHorizontalPixels) * in.CameraPixelSize.SI() /
		in.ObjectiveMagnification / math.Abs(mag4f.Value) / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Field of view (horizontal)",
		Equation: `\( \text{FOV}_h = m \frac{ a } { M_{obj} |M_{4f}| } \)`,
	}
}

// FieldOfViewVertical computes the vertical field of view in the object
// space.
func FieldOfViewVertical(in Inputs, mag4f design.Result) design.Result {
	u := units.Micrometer
	value := float64(in.CameraVerticalPixels) * in.CameraPixelSize.SI() /
		in.ObjectiveMagnification / math.Abs(mag4f.Value) / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Field of view (vertical)",
		Equation: `\( \text{FOV}_v = n \frac{ a } { M_{obj} |M_{4f}| } \)`,
	}
}

// CameraDiagonal computes the length of the diagonal across the camera.
func CameraDiagonal(in Inputs) design.Result {
	u := units.Millimeter
	m := float64(in.CameraHorizontalPixels)
	n := float64(in.CameraVerticalPixels)
	value := in.CameraPixelSize.SI() * math.Sqrt(m*m+n*n) / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Camera diagonal",
		Equation: `\( D = a \sqrt{m^2 + n^2} \)`,
	}
}

// MinimumLens1NA computes the minimum NA of the first Fourier lens to avoid
// clipping the +1 diffracted order.
func MinimumLens1NA(in Inputs) design.Result {
	value := in.Wavelength.SI()/in.GratingPeriod.SI() + in.ObjectiveNA/in.ObjectiveMagnification

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Minimum NA of Fourier lens 1",
		Equation: `\( \text{NA}_{L_1} \ge \frac{ \lambda }{ \Lambda } + \frac{\text{NA}_{obj}}{M_{obj}} \)`,
	}
}

// MinimumLens2NA computes the minimum NA of the second Fourier lens to avoid
// clipping the +1 diffracted order.
func MinimumLens2NA(in Inputs, mag4f design.Result) design.Result {
	wav := in.Wavelength.SI()
	value := wav/math.Abs(mag4f.Value)/in.GratingPeriod.SI() + 1.22*wav/in.PinholeDiameter.SI()

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Minimum NA of Fourier lens 2",
		Equation: `\( \text{NA}_{L_2} \ge \frac{ \lambda }{ \Lambda |M_{4f}| } + 1.22 \frac{ \lambda} { d } \)`,
	}
}

// lensNA computes the NA of a lens assuming the Abbe sine condition is valid.
func lensNA(focalLength, clearAperture float64) float64 {
	return clearAperture / 2 / focalLength
}

// Lens1NA computes the NA of the first Fourier lens.
func Lens1NA(in Inputs) design.Result {
	value := lensNA(in.Lens1FocalLength.SI(), in.Lens1ClearAperture.SI())

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Actual NA of Fourier lens 1",
		Equation: `\( \text{NA}_{L_1} = \frac{ D_1 }{ 2 f_1 } \)`,
	}
}

// Lens2NA computes the NA of the second Fourier lens.
func Lens2NA(in Inputs) design.Result {
	value := lensNA(in.Lens2FocalLength.SI(), in.Lens2ClearAperture.SI())

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Actual NA of Fourier lens 2",
		Equation: `\( \text{NA}_{L_2} = \frac{ D_2 }{ 2 f_2 } \)`,
	}
}

// MaximumPinholeDiameter computes the maximum pinhole diameter that ensures a
// uniform reference beam.
func MaximumPinholeDiameter(in Inputs, camDiag design.Result) design.Result {
	u := units.Micrometer
	value := 2.44 * in.Wavelength.SI() * in.Lens2FocalLength.SI() / camDiag.SI() /
		in.CentralLobeSizeFactor / u.Factor()

	return design.Result{
		Value:    value,
		Units:    u,
		Name:     "Maximum pinhole diameter",
		Equation: `\( d \le \frac{ 2.44 \lambda f_2 } { \gamma D} \)`,
	}
}

// CouplingRatio computes the ratio of the unscattered and scattered light
// beam radii in the Fourier plane. A ratio of 1 means the diffraction spot is
// the same size as the FOV and only the DC signal can be obtained; as the
// ratio approaches zero, more detail can be observed within the image for a
// given FOV.
func CouplingRatio(res, fovH, fovV design.Result) design.Result {
	fovDiag := math.Sqrt(fovH.SI()*fovH.SI() + fovV.SI()*fovV.SI())
	value := res.SI() / fovDiag

	return design.Result{
		Value:    value,
		Units:    units.None,
		Name:     "Coupling ratio",
		Equation: `\( \eta = \frac{ \Delta \rho }{ \text{FOV}_{\text{diagonal}}} \)`,
	}
}

// ComputeResults evaluates every formula in dependency order and returns the
// full result set keyed by formula identifier.
func ComputeResults(in Inputs) design.ResultSet {
	mag4f := Actual4fMagnification(in)
	camDiag := CameraDiagonal(in)
	res := Resolution(in)
	fovH := FieldOfViewHorizontal(in, mag4f)
	fovV := FieldOfViewVertical(in, mag4f)

	return design.ResultSet{
		"resolution":               res,
		"minimum_resolution":       MinimumResolution(in),
		"camera_diagonal":          camDiag,
		"maximum_pixel_size":       MaximumPixelSize(in, mag4f),
		"field_of_view_horizontal": fovH,
		"field_of_view_vertical":   fovV,
		"maximum_grating_period":   MaximumGratingPeriod(in),
		"fourier_plane_spacing":    FourierPlaneSpacing(in),
		"fourier_plane_sizes":      FourierPlaneSizes(in),
		"minimum_lens_1_na":        MinimumLens1NA(in),
		"minimum_lens_2_na":        MinimumLens2NA(in, mag4f),
		"lens_1_na":                Lens1NA(in),
		"lens_2_na":                Lens2NA(in),
		"minimum_4f_magnification": Minimum4fMagnification(in),
		"4f_magnification":         mag4f,
		"system_magnification":     SystemMagnification(in, mag4f),
		"maximum_pinhole_diameter": MaximumPinholeDiameter(in, camDiag),
		"coupling_ratio":           CouplingRatio(res, fovH, fovV),
	}
}
