package charts

import (
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
	"github.com/HebaF/metacalculus-dashboard-WIP/forecast"
)

// Headroom factors for the secondary (count) axis range.
const (
	HeadroomFile = 1.1
	HeadroomLive = 1.2
)

const timelineTimeLayout = "2006-01-02 15:04:05"

// Dash styles cycled through when more than one scheme is plotted.
var schemeDashes = []string{"solid", "dash", "dashdot", "longdash"}

type TimelineOptions struct {
	// Headroom scales the count axis beyond the observed maximum.
	Headroom float64
	// HighlightScheme, when set, gets a point annotation on its most
	// recent observation.
	HighlightScheme string
}

// Timeline builds the prediction-history figure: one probability line per
// weighting scheme on the primary axis, and the forecaster count on a
// secondary right-hand axis.
func Timeline(obs []data.Observation, opts TimelineOptions) Figure {
	if opts.Headroom == 0 {
		opts.Headroom = HeadroomFile
	}

	var traces []Trace
	for i, scheme := range forecast.Schemes(obs) {
		traces = append(traces, probabilityTrace(obs, scheme, i))
	}
	traces = append(traces, countTrace(obs))

	fig := Figure{
		Data: traces,
		Layout: Layout{
			Title:        "Prediction History",
			PlotBgColor:  colorPanel,
			PaperBgColor: colorPanel,
			Font:         &Font{Color: colorText},
			XAxis: &Axis{
				Title:      "Date",
				ShowGrid:   boolPtr(true),
				GridColor:  colorGrid,
				TickFormat: "%Y-%m-%d",
			},
			YAxis: &Axis{
				Title:     "Probability (%)",
				ShowGrid:  boolPtr(true),
				GridColor: colorGrid,
				Range:     []float64{0, 100},
			},
			YAxis2: &Axis{
				Title:      "Number of Forecasters",
				Overlaying: "y",
				Side:       "right",
				ShowGrid:   boolPtr(false),
				Range:      []float64{0, CountAxisMax(obs, opts.Headroom)},
			},
			HoverMode: "x unified",
			Legend: &Legend{
				YAnchor: "top",
				Y:       0.99,
				XAnchor: "left",
				X:       0.01,
				BgColor: "rgba(0,0,0,0.5)",
			},
			Margin: &Margin{Top: 60, Bottom: 40},
			Height: 400,
		},
	}

	if a, ok := highlightAnnotation(obs, opts.HighlightScheme); ok {
		fig.Layout.Annotations = append(fig.Layout.Annotations, a)
	}

	return fig
}

// CountAxisMax bounds the secondary axis at the observed maximum count
// scaled by the headroom factor.
func CountAxisMax(obs []data.Observation, headroom float64) float64 {
	max := 0
	for _, o := range obs {
		if o.ForecasterCount > max {
			max = o.ForecasterCount
		}
	}
	return float64(max) * headroom
}

func probabilityTrace(obs []data.Observation, scheme string, index int) Trace {
	var x []string
	var y []float64
	for _, o := range obs {
		if o.Scheme != scheme {
			continue
		}
		x = append(x, o.EndTime.Format(timelineTimeLayout))
		y = append(y, o.Probability*100)
	}

	name := "Probability"
	if scheme != "" {
		name = scheme
	}

	return Trace{
		Type: "scatter",
		Mode: "lines",
		Name: name,
		X:    x,
		Y:    y,
		Line: &Line{
			Color: colorHigh,
			Width: 2,
			Dash:  schemeDashes[index%len(schemeDashes)],
		},
		HoverTemplate: "%{x}<br>Probability: %{y:.1f}%<extra></extra>",
	}
}

func countTrace(obs []data.Observation) Trace {
	// One count series over all rows; the export repeats the count per
	// scheme at the same timestamp, so duplicates plot on top of each
	// other harmlessly.
	var x []string
	var y []float64
	for _, o := range obs {
		x = append(x, o.EndTime.Format(timelineTimeLayout))
		y = append(y, float64(o.ForecasterCount))
	}

	return Trace{
		Type:          "scatter",
		Mode:          "lines",
		Name:          "Forecaster Count",
		X:             x,
		Y:             y,
		YAxis:         "y2",
		Line:          &Line{Color: colorMuted, Width: 2, Dash: "dot"},
		HoverTemplate: "%{x}<br>Forecasters: %{y}<extra></extra>",
	}
}

func highlightAnnotation(obs []data.Observation, scheme string) (Annotation, bool) {
	if scheme == "" {
		return Annotation{}, false
	}

	var last *data.Observation
	var lastTime time.Time
	for i := range obs {
		if obs[i].Scheme != scheme {
			continue
		}
		if last == nil || !obs[i].EndTime.Before(lastTime) {
			last = &obs[i]
			lastTime = obs[i].EndTime
		}
	}
	if last == nil {
		return Annotation{}, false
	}

	return Annotation{
		X:         last.EndTime.Format(timelineTimeLayout),
		Y:         last.Probability * 100,
		Text:      "latest " + scheme,
		ShowArrow: true,
		ArrowHead: 2,
		Font:      &Font{Color: colorText},
	}, true
}
