package mfki

import (
	"fmt"

	"github.com/kmdouglass/udesigner/design"
)

// homogeneityTarget is the minimum Fresnel number and beam-to-pitch ratio for
// good flat-field homogeneity.
const homogeneityTarget = 5.0

type rule func(in Inputs, results design.ResultSet) string

// rules is the fixed evaluation order of the validator.
var rules = []rule{
	validateFresnelNumber,
	validateHomogeneity,
	validateCrosstalk,
}

// validateFresnelNumber flags lenslets whose Fresnel number falls below the
// homogeneity target.
func validateFresnelNumber(_ Inputs, results design.ResultSet) string {
	fresnelNumber := results["fresnel_number"].Value
	if fresnelNumber < homogeneityTarget {
		return fmt.Sprintf(
			"Fresnel number (%v) should be greater than or equal to %v for good homogeneity.",
			fresnelNumber, homogeneityTarget,
		)
	}
	return ""
}

// validateHomogeneity flags beams spanning too few lenslets.
func validateHomogeneity(_ Inputs, results design.ResultSet) string {
	homogeneity := results["homogeneity"].Value
	if homogeneity < homogeneityTarget {
		return fmt.Sprintf(
			"Homogeneity (%v) should be less than or equal to %v for good homogeneity.",
			homogeneity, homogeneityTarget,
		)
	}
	return ""
}

// validateCrosstalk flags source images large enough to spill into
// neighboring lenslets of the excitation array.
func validateCrosstalk(in Inputs, _ design.ResultSet) string {
	value := in.MLAFocalLength.SI() / in.TelescopeMagnification / in.CollimatingLensFocal.SI() * in.SourceRadius.SI()
	target := in.MLAPitch.SI() / 2

	if value > target {
		return fmt.Sprintf(
			"Crosstalk (%v) should be less than or equal to %v for good homogeneity.",
			value, target,
		)
	}
	return ""
}

// ValidateResults runs every rule in its fixed order and collects the
// violations.
func ValidateResults(in Inputs, results design.ResultSet) []string {
	violations := make([]string, 0, len(rules))
	for _, r := range rules {
		if v := r(in, results); v != "" {
			violations = append(violations, v)
		}
	}
	return violations
}
