package models

import (
	"fmt"
	"math"
)

// DataPoint is a single chart entry: a category label and its magnitude
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Valid reports whether the point can be charted (finite value)
func (p DataPoint) Valid() bool {
	return !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0)
}

// Dataset is an ordered sequence of data points. Order is meaningful:
// it determines X-axis category order and pie slice order. Labels are
// not required to be unique.
type Dataset []DataPoint

// Clone returns an independent copy of the dataset
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// Labels returns the labels in dataset order
func (d Dataset) Labels() []string {
	labels := make([]string, len(d))
	for i, p := range d {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the values in dataset order
func (d Dataset) Values() []float64 {
	values := make([]float64, len(d))
	for i, p := range d {
		values[i] = p.Value
	}
	return values
}

// ChartKind identifies one of the supported chart variants
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
	ChartArea ChartKind = "area"
	ChartPie  ChartKind = "pie"
)

// ChartKinds returns all supported chart kinds in display order
func ChartKinds() []ChartKind {
	return []ChartKind{ChartLine, ChartBar, ChartArea, ChartPie}
}

// ParseChartKind parses a chart kind from its string form
func ParseChartKind(s string) (ChartKind, error) {
	switch ChartKind(s) {
	case ChartLine, ChartBar, ChartArea, ChartPie:
		return ChartKind(s), nil
	default:
		return "", fmt.Errorf("unknown chart kind: %q", s)
	}
}

// String returns the string form of the chart kind
func (k ChartKind) String() string {
	return string(k)
}

// Template is an immutable named preset used to seed a dataset and to
// generate a downloadable example CSV file
type Template struct {
	Slug              string  `json:"slug"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	FormatDescription string  `json:"format_description"`
	Example           Dataset `json:"example"`
}
