package reporter

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pthm/speechstyle/internal/classifier"
	"github.com/pthm/speechstyle/internal/labels"
)

// ChartReporter renders the chart scores as an HTML radar chart
type ChartReporter struct {
	w      io.Writer
	labels *labels.Set
}

// NewChartReporter creates a new HTML chart reporter
func NewChartReporter(w io.Writer, set *labels.Set) *ChartReporter {
	return &ChartReporter{w: w, labels: set}
}

// Report writes a standalone HTML page containing the radar chart
func (r *ChartReporter) Report(doc *Document) error {
	return r.build(doc).Render(r.w)
}

func (r *ChartReporter) build(doc *Document) *charts.Radar {
	axes := ComputeAxes(doc.Result.Scores, r.labels)

	indicators := make([]*opts.Indicator, 0, len(axes))
	values := make([]float32, 0, len(axes))
	for _, a := range axes {
		indicators = append(indicators, &opts.Indicator{
			Name: a.Name,
			Min:  0,
			Max:  float32(classifier.MaxScore),
		})
		values = append(values, float32(a.Value))
	}

	title := doc.Title
	if title == "" {
		title = r.labels.Title
	}

	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "640px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: doc.Source,
		}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator:   indicators,
			Shape:       "polygon",
			SplitNumber: int(classifier.MaxScore),
		}),
	)

	radar.AddSeries(r.labels.Sections.Chart.Text, []opts.RadarData{
		{Name: r.labels.Sections.Chart.Text, Value: values},
	},
		charts.WithLineStyleOpts(opts.LineStyle{Color: "deepskyblue"}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: "deepskyblue", Opacity: 0.8}),
	)

	return radar
}
