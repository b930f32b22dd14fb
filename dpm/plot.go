package dpm

import (
	"github.com/kmdouglass/udesigner/design"
)

// FourierPlanePlot describes the footprints of the zero and +1 diffraction
// orders in the Fourier plane after the first Fourier lens. Only the numeric
// geometry is produced here; rendering belongs to the report.
func FourierPlanePlot(results design.ResultSet) design.CirclePlot {
	sizes := results["fourier_plane_sizes"]
	radius := sizes.Value
	spacing := results["fourier_plane_spacing"].SI() / sizes.Units.Factor()

	return design.CirclePlot{
		Title:  "Diffracted Orders in the Fourier Plane",
		XLabel: "x (" + sizes.Units.String() + ")",
		YLabel: "y (" + sizes.Units.String() + ")",
		Units:  sizes.Units,
		Circles: []design.Circle{
			{X: 0, Y: 0, R: radius, Label: "0"},
			{X: spacing, Y: 0, R: radius, Label: "+1"},
		},
	}
}
