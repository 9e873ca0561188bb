package charts

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"chartbuilder/internal/models"
)

// Fixed capture surface size in pixels
const (
	captureWidth  = 900
	captureHeight = 500
)

// Capture is a raster snapshot of the chart surface, the input to both
// export paths.
type Capture struct {
	PNG    []byte
	Width  int
	Height int
}

// RenderPNG draws the chart description onto a raster surface. Like the
// on-screen preview, it is a pure function of the description: nothing
// is memoized between calls.
func RenderPNG(spec Spec) (Capture, error) {
	var buf bytes.Buffer
	var err error
	switch spec.Kind {
	case models.ChartLine, models.ChartArea:
		err = renderCartesianPNG(spec, &buf)
	case models.ChartBar:
		err = renderBarPNG(spec, &buf)
	case models.ChartPie:
		err = renderDonutPNG(spec, &buf)
	default:
		return Capture{}, fmt.Errorf("unknown chart kind: %q", spec.Kind)
	}
	if err != nil {
		return Capture{}, fmt.Errorf("failed to render %s chart: %w", spec.Kind, err)
	}
	return Capture{PNG: buf.Bytes(), Width: captureWidth, Height: captureHeight}, nil
}

func renderCartesianPNG(spec Spec, w io.Writer) error {
	xValues := make([]float64, len(spec.Values))
	ticks := make([]chart.Tick, len(spec.Values))
	for i, label := range spec.Labels {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	style := chart.Style{
		StrokeColor: colorFromHex(spec.Stroke),
		StrokeWidth: 3,
		DotColor:    colorFromHex(spec.Stroke),
		DotWidth:    4,
	}
	if spec.Kind == models.ChartArea {
		fill := colorFromHex(spec.Fill)
		fill.A = uint8(spec.FillOpacity * 255)
		style.FillColor = fill
	}

	graph := chart.Chart{
		Width:  captureWidth,
		Height: captureHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 25, Right: 25, Bottom: 25},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
			Style: chart.Style{FontSize: 10},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.SeriesName,
				XValues: xValues,
				YValues: spec.Values,
				Style:   style,
			},
		},
	}

	// Axis math needs a non-degenerate range: pin it for a single point
	// or an all-equal series.
	if len(spec.Values) == 1 {
		graph.XAxis.Range = &chart.ContinuousRange{Min: -1, Max: 1}
	}
	if minV, maxV := valueBounds(spec.Values); minV == maxV {
		graph.YAxis.Range = &chart.ContinuousRange{Min: minV - 1, Max: maxV + 1}
	}

	return graph.Render(chart.PNG, w)
}

func renderBarPNG(spec Spec, w io.Writer) error {
	fill := colorFromHex(spec.Fill)
	bars := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		bars[i] = chart.Value{
			Value: v,
			Label: spec.Labels[i],
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	graph := chart.BarChart{
		Width:    captureWidth,
		Height:   captureHeight,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.Style{FontSize: 10},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 10},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}

func renderDonutPNG(spec Spec, w io.Writer) error {
	values := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		fill := colorFromHex(SliceColor(i))
		values[i] = chart.Value{
			Value: v,
			Label: spec.Labels[i],
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
	}

	graph := chart.DonutChart{
		Width:  captureWidth,
		Height: captureHeight,
		Values: values,
	}

	return graph.Render(chart.PNG, w)
}

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func valueBounds(values []float64) (float64, float64) {
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}
