package responders

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/HebaF/metacalculus-dashboard-WIP/charts"
	"github.com/HebaF/metacalculus-dashboard-WIP/controllers"
	"github.com/HebaF/metacalculus-dashboard-WIP/metrics"
	"github.com/pkg/errors"
)

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"ChartJSON": func(f *charts.Figure) (template.JS, error) {
		raw, err := json.Marshal(f)
		if err != nil {
			return "", err
		}
		return template.JS(raw), nil
	},
}).Parse(
	`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>PHEIC Forecast Dashboard</title>
	<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
	<style>
		body { background-color: #111827; color: white; font-family: sans-serif; padding: 20px; min-height: 100vh; margin: 0; }
		h1.question-title { text-align: center; padding: 20px; }
		h2.prediction-headline { text-align: center; }
		.prediction-value { color: #4ade80; }
		.prediction-count { color: gray; text-align: center; }
		.no-data-msg { color: #ef4444; text-align: center; font-size: 1.4em; padding: 40px 0; }
		.fetch-status { color: gray; text-align: center; }
		.chart { background-color: #1f2937; }
		.details-panel { background-color: #1f2937; padding: 20px; border-radius: 5px; }
		.details-panel p, .context-block p { color: gray; white-space: pre-wrap; }
		a.question-link { color: #4ade80; }
		.last-updated { color: gray; text-align: right; margin-top: 20px; }
	</style>
</head>
<body>
<h1 class="question-title">{{.Title}}</h1>
{{if .Summary}}
<h2 class="prediction-headline">Community Prediction: <span class="prediction-value">{{.Summary.PercentLabel}} probability</span></h2>
<p class="prediction-count">Based on {{.Summary.CountLabel}} predictions from the Metaculus community</p>
{{else}}
<div class="no-data-msg">No data available</div>
{{if .Fetch}}<p class="fetch-status">The live forecast could not be retrieved ({{.Fetch.Status}}). Please try again later.</p>{{end}}
{{end}}
{{if .Gauge}}<div id="gauge" class="chart"></div>{{end}}
{{if .Timeline}}
<h3>Prediction Timeline</h3>
<div id="timeline" class="chart"></div>
{{end}}
<h3>Question Details</h3>
<div class="details-panel">
	<h4>Resolution Criteria</h4>
	<p>{{.ResolutionCriteria}}</p>
	{{if .Description}}<h4>Background</h4>
	<p>{{.Description}}</p>{{end}}
	{{if .QuestionURL}}<a class="question-link" href="{{.QuestionURL}}" target="_blank">View on Metaculus &rarr;</a>{{end}}
</div>
<div class="context-block">
	<h3>What is a PHEIC?</h3>
	<p>A Public Health Emergency of International Concern (PHEIC) is a formal declaration by the World Health Organization (WHO) of "an extraordinary event which is determined to constitute a public health risk to other States through the international spread of disease and to potentially require a coordinated international response."

This declaration is made under the International Health Regulations (IHR) and represents the highest level of alert that the WHO can issue.</p>
</div>
<div class="context-block">
	<h3>About This Prediction</h3>
	<p>This dashboard displays the community prediction from Metaculus, a forecasting platform that aggregates predictions from thousands of forecasters. The prediction shown represents the community's estimated probability that an avian influenza virus will trigger a WHO PHEIC declaration before 2030.

Metaculus uses a scoring system that incentivizes accurate predictions, and the community has a strong track record of forecasting various events and outcomes.</p>
</div>
<p class="last-updated">Last updated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}} UTC</p>
<script>
{{if .Gauge}}	var gauge = {{ChartJSON .Gauge}};
	Plotly.newPlot("gauge", gauge.data, gauge.layout);
{{end}}{{if .Timeline}}	var timeline = {{ChartJSON .Timeline}};
	Plotly.newPlot("timeline", timeline.data, timeline.layout);
{{end}}</script>
</body>
</html>`))

type WebDashboardResponder struct{}

// RenderPage executes the page template once; the result is served
// unchanged to every visitor.
func (_ *WebDashboardResponder) RenderPage(r *controllers.DashboardResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, r); err != nil {
		return nil, errors.Wrap(err, "rendering dashboard page")
	}
	return buf.Bytes(), nil
}

// ServePage writes the precomputed document at the root path.
func (_ *WebDashboardResponder) ServePage(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		metrics.PagesServed.Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
