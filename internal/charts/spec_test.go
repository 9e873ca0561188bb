package charts

import (
	"testing"

	"chartbuilder/internal/models"
)

var sampleData = models.Dataset{
	{Label: "Jan", Value: 1200},
	{Label: "Feb", Value: 1900},
	{Label: "Mar", Value: 1600},
	{Label: "Apr", Value: 2100},
}

func TestBuildProjection(t *testing.T) {
	for _, kind := range models.ChartKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			spec, err := Build(kind, sampleData)
			if err != nil {
				t.Fatalf("Build(%s) error: %v", kind, err)
			}
			if spec.Kind != kind {
				t.Errorf("Kind = %q, want %q", spec.Kind, kind)
			}
			if len(spec.Labels) != len(sampleData) || len(spec.Values) != len(sampleData) {
				t.Fatalf("projection lengths = %d/%d, want %d",
					len(spec.Labels), len(spec.Values), len(sampleData))
			}
			for i, p := range sampleData {
				if spec.Labels[i] != p.Label {
					t.Errorf("Labels[%d] = %q, want %q", i, spec.Labels[i], p.Label)
				}
				if spec.Values[i] != p.Value {
					t.Errorf("Values[%d] = %v, want %v", i, spec.Values[i], p.Value)
				}
			}
		})
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	if _, err := Build(models.ChartLine, models.Dataset{}); err == nil {
		t.Error("Build with empty dataset expected error, got nil")
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := Build(models.ChartKind("scatter"), sampleData); err == nil {
		t.Error("Build with unknown kind expected error, got nil")
	}
}

func TestBuildStyling(t *testing.T) {
	line, _ := Build(models.ChartLine, sampleData)
	if line.Stroke != LineStroke {
		t.Errorf("line stroke = %q, want %q", line.Stroke, LineStroke)
	}

	bar, _ := Build(models.ChartBar, sampleData)
	if bar.Fill != BarFill {
		t.Errorf("bar fill = %q, want %q", bar.Fill, BarFill)
	}

	area, _ := Build(models.ChartArea, sampleData)
	if area.Stroke != AreaStroke || area.Fill != AreaStroke {
		t.Errorf("area colors = %q/%q, want %q", area.Stroke, area.Fill, AreaStroke)
	}
	if area.FillOpacity != AreaOpacity {
		t.Errorf("area opacity = %v, want %v", area.FillOpacity, AreaOpacity)
	}

	pie, _ := Build(models.ChartPie, sampleData)
	if pie.InnerRadius != DonutInnerRadius || pie.OuterRadius != DonutOuterRadius {
		t.Errorf("pie radii = %q/%q, want %q/%q",
			pie.InnerRadius, pie.OuterRadius, DonutInnerRadius, DonutOuterRadius)
	}
	if pie.PadAngle != DonutPadAngle {
		t.Errorf("pie pad angle = %d, want %d", pie.PadAngle, DonutPadAngle)
	}
}

func TestSliceColorCyclesPalette(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "#0088FE"},
		{1, "#00C49F"},
		{2, "#FFBB28"},
		{3, "#0088FE"},
		{4, "#00C49F"},
		{7, "#00C49F"},
	}
	for _, tt := range tests {
		if got := SliceColor(tt.index); got != tt.want {
			t.Errorf("SliceColor(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
