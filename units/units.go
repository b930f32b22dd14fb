// Package units enumerates the physical unit scale factors used to normalize
// design inputs into SI base units before computation.
package units

import "fmt"

// Unit identifies a physical unit by its symbolic name. Each unit carries a
// multiplicative conversion factor to its SI base unit. Millimeter and
// Milliradian share the same factor but remain distinct tags: one scales
// lengths, the other angles.
type Unit string

const (
	// Millimeter is 1e-3 meters.
	Millimeter Unit = "mm"

	// Micrometer is 1e-6 meters.
	Micrometer Unit = "um"

	// Nanometer is 1e-9 meters.
	Nanometer Unit = "nm"

	// Milliradian is 1e-3 radians.
	Milliradian Unit = "mrad"

	// None marks a dimensionless quantity. Its factor is 1.
	None Unit = ""
)

// All lists every named unit, in declaration order.
var All = []Unit{Millimeter, Micrometer, Nanometer, Milliradian}

// Factor returns the multiplicative conversion factor to the unit's SI base.
func (u Unit) Factor() float64 {
	switch u {
	case Millimeter, Milliradian:
		return 1e-3
	case Micrometer:
		return 1e-6
	case Nanometer:
		return 1e-9
	default:
		return 1
	}
}

// String returns the symbolic name for display. None renders as an empty
// string.
func (u Unit) String() string {
	return string(u)
}

// Convert normalizes a raw value into SI base units.
func Convert(value float64, u Unit) float64 {
	return value * u.Factor()
}

// Parse resolves a symbolic unit name to its Unit. It fails with
// *UnknownUnitError when the name is not part of the enumeration.
func Parse(name string) (Unit, error) {
	for _, u := range All {
		if string(u) == name {
			return u, nil
		}
	}
	return None, &UnknownUnitError{Name: name}
}

// UnknownUnitError reports a unit name that is not part of the enumeration.
type UnknownUnitError struct {
	// Name is the unrecognized symbolic name.
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit: %q", e.Name)
}
