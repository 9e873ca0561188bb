package charts

import (
	"fmt"

	"chartbuilder/internal/models"
)

// Fixed design colors. Not user-configurable in this version.
const (
	LineStroke  = "#8884d8"
	BarFill     = "#82ca9d"
	AreaStroke  = "#8884d8"
	AreaOpacity = 0.35

	// Donut geometry: non-zero inner radius with a fixed angular gap
	// between slices.
	DonutInnerRadius = "45%"
	DonutOuterRadius = "70%"
	DonutPadAngle    = 2
)

// PiePalette is the fixed slice palette, cycled by position mod 3
var PiePalette = []string{"#0088FE", "#00C49F", "#FFBB28"}

// SliceColor returns the palette color for the slice at position i
func SliceColor(i int) string {
	return PiePalette[i%len(PiePalette)]
}

// Spec is a renderer-agnostic chart description: everything a renderer
// needs to draw the chart, with no reference to any graphics library.
// Building a Spec is a pure function of (Dataset, ChartKind).
type Spec struct {
	Kind       models.ChartKind
	SeriesName string
	Labels     []string
	Values     []float64

	// Cartesian styling (line, bar, area)
	Stroke      string
	Fill        string
	FillOpacity float64

	// Pie styling
	Palette     []string
	InnerRadius string
	OuterRadius string
	PadAngle    int
}

// builders dispatches a chart kind to its spec builder. Each builder is
// a pure function from dataset to description.
var builders = map[models.ChartKind]func(models.Dataset) Spec{
	models.ChartLine: buildLine,
	models.ChartBar:  buildBar,
	models.ChartArea: buildArea,
	models.ChartPie:  buildPie,
}

// Build produces the chart description for the given kind and dataset.
// An empty dataset has no chart at all: the widget hides the chart
// surface instead of rendering an empty one.
func Build(kind models.ChartKind, ds models.Dataset) (Spec, error) {
	if len(ds) == 0 {
		return Spec{}, fmt.Errorf("empty dataset: nothing to chart")
	}
	builder, ok := builders[kind]
	if !ok {
		return Spec{}, fmt.Errorf("unknown chart kind: %q", kind)
	}
	return builder(ds), nil
}

func buildLine(ds models.Dataset) Spec {
	return Spec{
		Kind:       models.ChartLine,
		SeriesName: "value",
		Labels:     ds.Labels(),
		Values:     ds.Values(),
		Stroke:     LineStroke,
	}
}

func buildBar(ds models.Dataset) Spec {
	return Spec{
		Kind:       models.ChartBar,
		SeriesName: "value",
		Labels:     ds.Labels(),
		Values:     ds.Values(),
		Stroke:     BarFill,
		Fill:       BarFill,
		FillOpacity: 1,
	}
}

func buildArea(ds models.Dataset) Spec {
	return Spec{
		Kind:        models.ChartArea,
		SeriesName:  "value",
		Labels:      ds.Labels(),
		Values:      ds.Values(),
		Stroke:      AreaStroke,
		Fill:        AreaStroke,
		FillOpacity: AreaOpacity,
	}
}

func buildPie(ds models.Dataset) Spec {
	return Spec{
		Kind:        models.ChartPie,
		SeriesName:  "value",
		Labels:      ds.Labels(),
		Values:      ds.Values(),
		Palette:     PiePalette,
		InnerRadius: DonutInnerRadius,
		OuterRadius: DonutOuterRadius,
		PadAngle:    DonutPadAngle,
	}
}
