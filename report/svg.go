package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/kmdouglass/udesigner/design"
)

// svgSize is the rendered width and height of a plot in pixels.
const svgSize = 480.0

// svgMargin leaves room for the title and axis labels.
const svgMargin = 48.0

// fillColors are cycled across the plotted circles.
var fillColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728"}

// RenderCirclePlot renders the numeric geometry of a circle plot as an
// inline SVG fragment. Axis limits are symmetric around the origin and sized
// to contain every circle.
func RenderCirclePlot(p design.CirclePlot) template.HTML {
	extent := 0.0
	for _, c := range p.Circles {
		if e := abs(c.X) + c.R; e > extent {
			extent = e
		}
		if e := abs(c.Y) + c.R; e > extent {
			extent = e
		}
	}
	if extent == 0 {
		extent = 1
	}

	scale := (svgSize/2 - svgMargin) / extent
	center := svgSize / 2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		svgSize, svgSize, svgSize, svgSize))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf(
		`<text x="%.0f" y="24" text-anchor="middle" font-size="16">%s</text>`,
		center, template.HTMLEscapeString(p.Title)))
	sb.WriteString("\n")

	// Axes through the origin
	sb.WriteString(fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999" stroke-width="1"/>`,
		svgMargin, center, svgSize-svgMargin, center))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999" stroke-width="1"/>`,
		center, svgMargin, center, svgSize-svgMargin))
	sb.WriteString("\n")

	for i, c := range p.Circles {
		cx := center + c.X*scale
		cy := center - c.Y*scale
		r := c.R * scale
		color := fillColors[i%len(fillColors)]

		sb.WriteString(fmt.Sprintf(
			`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.55" stroke="%s"/>`,
			cx, cy, r, color, color))
		sb.WriteString("\n")
		if c.Label != "" {
			sb.WriteString(fmt.Sprintf(
				`<text x="%.2f" y="%.2f" text-anchor="middle" font-size="13">%s</text>`,
				cx, cy-r-6, template.HTMLEscapeString(c.Label)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf(
		`<text x="%.0f" y="%.1f" text-anchor="middle" font-size="13">%s</text>`,
		center, svgSize-12, template.HTMLEscapeString(p.XLabel)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(
		`<text x="16" y="%.0f" text-anchor="middle" font-size="13" transform="rotate(-90 16 %.0f)">%s</text>`,
		center, center, template.HTMLEscapeString(p.YLabel)))
	sb.WriteString("\n</svg>")

	return template.HTML(sb.String())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
