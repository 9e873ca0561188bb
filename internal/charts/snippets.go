package charts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	chartrender "github.com/go-echarts/go-echarts/v2/render"

	"chartbuilder/internal/models"
)

// previewChartID is the DOM id of the preview surface. Underscores only:
// the id doubles as part of a JS identifier in the generated script.
const previewChartID = "chart_preview"

// Snippet is an embeddable chart fragment: a root div plus the script
// that initializes the chart in it. The hosting page must load the
// ECharts library itself; the snippet assumes a global `echarts`.
type Snippet struct {
	ID   string
	HTML template.HTML
}

// HTMLSnippet renders the chart description as an interactive ECharts
// fragment for the builder page preview.
func HTMLSnippet(spec Spec) (Snippet, error) {
	switch spec.Kind {
	case models.ChartLine, models.ChartArea:
		return cartesianLineSnippet(spec)
	case models.ChartBar:
		return barSnippet(spec)
	case models.ChartPie:
		return donutSnippet(spec)
	default:
		return Snippet{}, fmt.Errorf("unknown chart kind: %q", spec.Kind)
	}
}

// globalOptions carries the shared cartesian presentation: gridlines on
// both axes, an axis-trigger hover tooltip and a legend.
func globalOptions(spec Spec) []echarts.GlobalOpts {
	return []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			ChartID: previewChartID,
			Width:   "100%",
			Height:  "420px",
		}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		echarts.WithLegendOpts(opts.Legend{Show: true}),
		echarts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		echarts.WithColorsOpts(opts.Colors{spec.Stroke}),
	}
}

func cartesianLineSnippet(spec Spec) (Snippet, error) {
	line := echarts.NewLine()
	line.SetGlobalOptions(globalOptions(spec)...)

	data := make([]opts.LineData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(spec.Labels).AddSeries(spec.SeriesName, data)

	seriesOpts := []echarts.SeriesOpts{
		echarts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}),
	}
	if spec.Kind == models.ChartArea {
		seriesOpts = append(seriesOpts,
			echarts.WithAreaStyleOpts(opts.AreaStyle{Opacity: float32(spec.FillOpacity)}))
	}
	line.SetSeriesOptions(seriesOpts...)

	line.Renderer = newSnippetRenderer(line, line.Validate)
	return renderSnippet(line)
}

func barSnippet(spec Spec) (Snippet, error) {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec)...)

	data := make([]opts.BarData, len(spec.Values))
	for i, v := range spec.Values {
		data[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(spec.Labels).AddSeries(spec.SeriesName, data)

	bar.Renderer = newSnippetRenderer(bar, bar.Validate)
	return renderSnippet(bar)
}

// donutSnippet emits a hand-built option object instead of going through
// go-echarts: the ring radii and the angular pad between slices need to
// be stated exactly, and slice colors cycle the fixed palette by
// position.
func donutSnippet(spec Spec) (Snippet, error) {
	seriesData := make([]map[string]interface{}, len(spec.Values))
	for i, v := range spec.Values {
		seriesData[i] = map[string]interface{}{
			"name":      spec.Labels[i],
			"value":     v,
			"itemStyle": map[string]interface{}{"color": SliceColor(i)},
		}
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "item"},
		"legend":  map[string]interface{}{"show": true, "bottom": 0},
		"series": []interface{}{map[string]interface{}{
			"type":     "pie",
			"radius":   []string{spec.InnerRadius, spec.OuterRadius},
			"padAngle": spec.PadAngle,
			"data":     seriesData,
		}},
	}

	optJSON, err := json.Marshal(option)
	if err != nil {
		return Snippet{}, fmt.Errorf("failed to marshal donut option: %w", err)
	}

	html := fmt.Sprintf(`<div id=%q class="chart-surface" style="width:100%%;height:420px;"></div>
<script type="text/javascript">
(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);c.setOption(%s);window.addEventListener('resize',function(){c.resize();});})();
</script>`, previewChartID, previewChartID, optJSON)

	return Snippet{ID: previewChartID, HTML: template.HTML(html)}, nil
}

// snippetRenderer replaces the stock go-echarts renderer, which emits a
// whole standalone HTML document, with one that emits just the div and
// init script so the fragment can be embedded in the builder page.
type snippetRenderer struct {
	c      interface{}
	before []func()
}

func newSnippetRenderer(c interface{}, before ...func()) chartrender.Renderer {
	return &snippetRenderer{c: c, before: before}
}

var snippetTpl = template.Must(template.New("snippet").
	Funcs(template.FuncMap{
		"safeJS": func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	}).
	Parse(`<div id="{{ .ChartID }}" class="chart-surface" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
<script type="text/javascript">
"use strict";
let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'));
goecharts_{{ .ChartID | safeJS }}.setOption({{ .JSONNotEscaped | safeJS }});
window.addEventListener('resize', function () { goecharts_{{ .ChartID | safeJS }}.resize(); });
</script>
`))

func (r *snippetRenderer) Render(w io.Writer) error {
	for _, fn := range r.before {
		fn()
	}
	return snippetTpl.Execute(w, r.c)
}

// renderSnippet runs the chart's renderer and wraps the output
func renderSnippet(c chartrender.Renderer) (Snippet, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return Snippet{}, fmt.Errorf("failed to render chart snippet: %w", err)
	}
	return Snippet{ID: previewChartID, HTML: template.HTML(buf.String())}, nil
}
