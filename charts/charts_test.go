package charts

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
)

func TestGauge_Bands(t *testing.T) {
	t.Parallel()

	fig := Gauge(43.7)

	if len(fig.Data) != 1 {
		t.Fatalf("Expected 1 trace, got %d", len(fig.Data))
	}
	trace := fig.Data[0]
	if trace.Type != "indicator" || trace.Mode != "gauge+number" {
		t.Errorf("Expected a gauge indicator trace, got type %q mode %q", trace.Type, trace.Mode)
	}
	if trace.Value == nil || *trace.Value != 43.7 {
		t.Errorf("Expected value 43.7, got %v", trace.Value)
	}
	steps := trace.Gauge.Steps
	if len(steps) != 3 {
		t.Fatalf("Expected 3 bands, got %d", len(steps))
	}
	wantBounds := [][2]float64{{0, 33}, {33, 66}, {66, 100}}
	for i, step := range steps {
		if step.Range[0] != wantBounds[i][0] || step.Range[1] != wantBounds[i][1] {
			t.Errorf("Band %d: expected range %v, got %v", i, wantBounds[i], step.Range)
		}
	}
	if steps[0].Color == steps[1].Color || steps[1].Color == steps[2].Color {
		t.Error("Expected distinct band colors")
	}
}

func TestGauge_MarshalsToPlotlySchema(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Gauge(80))
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	for _, want := range []string{`"gauge+number"`, `"ticksuffix":"%"`, `"steps"`} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("Expected marshaled figure to contain %s, got %s", want, raw)
		}
	}
}

func timelineObs(t *testing.T) []data.Observation {
	base, err := time.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	return []data.Observation{
		{EndTime: base, Probability: 0.2, ForecasterCount: 10},
		{EndTime: base.AddDate(0, 0, 1), Probability: 0.5, ForecasterCount: 20},
		{EndTime: base.AddDate(0, 0, 2), Probability: 0.8, ForecasterCount: 30},
	}
}

func TestCountAxisMax(t *testing.T) {
	t.Parallel()

	maxCount := float64(30)

	got := CountAxisMax(timelineObs(t), HeadroomFile)
	if want := maxCount * HeadroomFile; got != want {
		t.Errorf("Expected axis max %v, got %v", want, got)
	}

	got = CountAxisMax(timelineObs(t), HeadroomLive)
	if want := maxCount * HeadroomLive; got != want {
		t.Errorf("Expected axis max %v, got %v", want, got)
	}
}

func TestTimeline_SingleScheme(t *testing.T) {
	t.Parallel()

	fig := Timeline(timelineObs(t), TimelineOptions{Headroom: HeadroomFile})

	// One probability trace plus the count trace.
	if len(fig.Data) != 2 {
		t.Fatalf("Expected 2 traces, got %d", len(fig.Data))
	}
	if fig.Data[0].Y[2] != 80 {
		t.Errorf("Expected last probability point at 80, got %g", fig.Data[0].Y[2])
	}
	if fig.Data[1].YAxis != "y2" {
		t.Errorf("Expected count trace on y2, got %q", fig.Data[1].YAxis)
	}
	if want := float64(30) * HeadroomFile; fig.Layout.YAxis2.Range[1] != want {
		t.Errorf("Expected secondary axis max %v, got %v", want, fig.Layout.YAxis2.Range[1])
	}
	if fig.Layout.YAxis.Range[0] != 0 || fig.Layout.YAxis.Range[1] != 100 {
		t.Errorf("Expected primary axis range [0,100], got %v", fig.Layout.YAxis.Range)
	}
	if len(fig.Layout.Annotations) != 0 {
		t.Errorf("Expected no annotations without a highlight scheme, got %d", len(fig.Layout.Annotations))
	}
}

func TestTimeline_MultipleSchemesDistinctStyles(t *testing.T) {
	t.Parallel()

	obs := timelineObs(t)
	for i := range obs {
		if i%2 == 0 {
			obs[i].Scheme = "community"
		} else {
			obs[i].Scheme = "recency-weighted"
		}
	}

	fig := Timeline(obs, TimelineOptions{Headroom: HeadroomFile})

	if len(fig.Data) != 3 {
		t.Fatalf("Expected 3 traces, got %d", len(fig.Data))
	}
	if fig.Data[0].Name != "community" || fig.Data[1].Name != "recency-weighted" {
		t.Errorf("Expected scheme-named traces, got %q and %q", fig.Data[0].Name, fig.Data[1].Name)
	}
	if fig.Data[0].Line.Dash == fig.Data[1].Line.Dash {
		t.Error("Expected distinct dash styles per scheme")
	}
}

func TestTimeline_HighlightAnnotation(t *testing.T) {
	t.Parallel()

	obs := timelineObs(t)
	for i := range obs {
		obs[i].Scheme = "community"
	}

	fig := Timeline(obs, TimelineOptions{Headroom: HeadroomFile, HighlightScheme: "community"})

	if len(fig.Layout.Annotations) != 1 {
		t.Fatalf("Expected 1 annotation, got %d", len(fig.Layout.Annotations))
	}
	a := fig.Layout.Annotations[0]
	if a.Y != 80 {
		t.Errorf("Expected annotation on the latest point at 80, got %g", a.Y)
	}
	if !strings.Contains(a.Text, "community") {
		t.Errorf("Expected annotation to name the scheme, got %q", a.Text)
	}
}

func TestTimeline_HighlightUnknownSchemeOmitted(t *testing.T) {
	t.Parallel()

	fig := Timeline(timelineObs(t), TimelineOptions{HighlightScheme: "nonexistent"})
	if len(fig.Layout.Annotations) != 0 {
		t.Errorf("Expected no annotation for an absent scheme, got %d", len(fig.Layout.Annotations))
	}
}

func TestTimeline_SecondaryAxisHidesGrid(t *testing.T) {
	t.Parallel()

	fig := Timeline(timelineObs(t), TimelineOptions{})
	if fig.Layout.YAxis2.ShowGrid == nil || *fig.Layout.YAxis2.ShowGrid {
		t.Error("Expected secondary axis grid to be explicitly disabled")
	}

	raw, err := json.Marshal(fig)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	if !strings.Contains(string(raw), `"showgrid":false`) {
		t.Error("Expected showgrid:false to survive marshaling")
	}
}
