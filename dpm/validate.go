package dpm

import (
	"fmt"
	"math"

	"github.com/kmdouglass/udesigner/design"
	"github.com/kmdouglass/udesigner/units"
)

// rule checks one design constraint against the computed results. It returns
// a descriptive violation message when the constraint is not met and the
// empty string otherwise. Rules never panic for values the formulas can
// legally produce and never mutate their arguments.
type rule func(in Inputs, results design.ResultSet) string

// rules is the fixed evaluation order of the validator.
var rules = []rule{
	validate4fMagnification,
	validateLens1NA,
	validateLens2NA,
	validatePinholeDiameter,
	validatePixelSize,
}

// validate4fMagnification checks that the magnification of the 4f system
// exceeds the minimum requirement.
func validate4fMagnification(_ Inputs, results design.ResultSet) string {
	mag4f := math.Abs(results["4f_magnification"].Value)
	minMag4f := math.Abs(results["minimum_4f_magnification"].Value)

	if mag4f < minMag4f {
		return fmt.Sprintf(
			"Absolute value of 4f magnification is less than the minimum requirement: Minimum: %v, Actual: %v",
			minMag4f, mag4f,
		)
	}
	return ""
}

// validateLens1NA checks that the NA of lens 1 exceeds the minimum
// requirement.
func validateLens1NA(_ Inputs, results design.ResultSet) string {
	lens1NA := results["lens_1_na"].Value
	minLens1NA := results["minimum_lens_1_na"].Value

	if lens1NA < minLens1NA {
		return fmt.Sprintf(
			"NA of lens 1 is less than the minimum requirement: Minimum: %v, Actual: %v",
			minLens1NA, lens1NA,
		)
	}
	return ""
}

// validateLens2NA checks that the NA of lens 2 exceeds the minimum
// requirement.
func validateLens2NA(_ Inputs, results design.ResultSet) string {
	lens2NA := results["lens_2_na"].Value
	minLens2NA := results["minimum_lens_2_na"].Value

	if lens2NA < minLens2NA {
		return fmt.Sprintf(
			"NA of lens 2 is less than the minimum requirement: Minimum: %v, Actual: %v",
			minLens2NA, lens2NA,
		)
	}
	return ""
}

// validatePinholeDiameter checks that the pinhole diameter stays below the
// maximum requirement.
func validatePinholeDiameter(in Inputs, results design.ResultSet) string {
	u := units.Micrometer
	phDiam := in.PinholeDiameter.In(u)
	maxPhDiam := results["maximum_pinhole_diameter"].SI() / u.Factor()

	if phDiam > maxPhDiam {
		return fmt.Sprintf(
			"Pinhole diameter exceeds the maximum requirement: Maximum %v %s, Actual: %v %s",
			maxPhDiam, u, phDiam, u,
		)
	}
	return ""
}

// validatePixelSize checks that the pixel size stays below the maximum
// requirement.
func validatePixelSize(in Inputs, results design.ResultSet) string {
	u := units.Micrometer
	px := in.CameraPixelSize.In(u)
	maxPx := results["maximum_pixel_size"].SI() / u.Factor()

	if px > maxPx {
		return fmt.Sprintf(
			"Pixel size exceeds the maximum requirement: Maximum %v %s, Actual: %v %s",
			maxPx, u, px, u,
		)
	}
	return ""
}

// ValidateResults runs every rule in its fixed order and collects the
// violations. An empty slice means the design satisfies every constraint.
func ValidateResults(in Inputs, results design.ResultSet) []string {
	violations := make([]string, 0, len(rules))
	for _, r := range rules {
		if v := r(in, results); v != "" {
			violations = append(violations, v)
		}
	}
	return violations
}
