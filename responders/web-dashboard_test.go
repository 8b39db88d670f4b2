package responders

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/charts"
	"github.com/HebaF/metacalculus-dashboard-WIP/controllers"
	"github.com/HebaF/metacalculus-dashboard-WIP/data"
	"github.com/HebaF/metacalculus-dashboard-WIP/forecast"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func parsePage(t *testing.T, page []byte) *goquery.Document {
	pageHTML, err := html.Parse(strings.NewReader(string(page)))
	if err != nil {
		t.Fatalf("Rendered page did not parse: %s", err)
	}
	return goquery.NewDocumentFromNode(pageHTML)
}

func fileVariantResult(t *testing.T) *controllers.DashboardResult {
	endTime, err := time.Parse("2006-01-02", "2024-01-03")
	if err != nil {
		t.Fatal(err)
	}

	gauge := charts.Gauge(80)
	timeline := charts.Timeline([]data.Observation{
		{EndTime: endTime, Probability: 0.8, ForecasterCount: 30},
	}, charts.TimelineOptions{Headroom: charts.HeadroomFile})

	return &controllers.DashboardResult{
		Title: controllers.QuestionTitle,
		Summary: &forecast.Summary{
			Percentage: 80,
			Count:      30,
			HasCount:   true,
			EndTime:    endTime,
		},
		Gauge:              &gauge,
		Timeline:           &timeline,
		ResolutionCriteria: "Resolves YES on a PHEIC declaration.",
		GeneratedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWebDashboardResponder_RenderPage(t *testing.T) {
	t.Parallel()

	r := &WebDashboardResponder{}
	page, err := r.RenderPage(fileVariantResult(t))
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	doc := parsePage(t, page)

	values := doc.Find(".prediction-value")
	if len(values.Nodes) != 1 {
		t.Fatalf("Expected 1 prediction value, found %d", len(values.Nodes))
	}
	if !strings.Contains(values.Text(), "80.0%") {
		t.Errorf("Expected displayed probability '80.0%%', got %q", values.Text())
	}

	counts := doc.Find(".prediction-count")
	if !strings.Contains(counts.Text(), "30 predictions") {
		t.Errorf("Expected forecaster count in headline, got %q", counts.Text())
	}

	if len(doc.Find("#gauge").Nodes) != 1 {
		t.Error("Expected 1 gauge mount node")
	}
	if len(doc.Find("#timeline").Nodes) != 1 {
		t.Error("Expected 1 timeline mount node")
	}
	if len(doc.Find(".no-data-msg").Nodes) != 0 {
		t.Error("Expected no error block on a valid page")
	}

	if !strings.Contains(doc.Find(".last-updated").Text(), "2024-03-01 12:00:00 UTC") {
		t.Errorf("Expected last-updated timestamp, got %q", doc.Find(".last-updated").Text())
	}

	// The chart specs must reach the inline script unescaped.
	if !strings.Contains(string(page), `"gauge+number"`) {
		t.Error("Expected gauge spec JSON in page script")
	}
}

func TestWebDashboardResponder_RenderPage_NoData(t *testing.T) {
	t.Parallel()

	r := &WebDashboardResponder{}
	result := &controllers.DashboardResult{
		Title:              controllers.QuestionTitle,
		Fetch:              &data.QuestionResult{Status: data.FetchTransportError},
		ResolutionCriteria: "Resolves YES on a PHEIC declaration.",
		GeneratedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	page, err := r.RenderPage(result)
	if err != nil {
		t.Fatalf("Expected the no-data state to render, got %s", err)
	}

	doc := parsePage(t, page)

	msgs := doc.Find(".no-data-msg")
	if len(msgs.Nodes) != 1 {
		t.Fatalf("Expected 1 no-data block, found %d", len(msgs.Nodes))
	}
	if !strings.Contains(msgs.Text(), "No data available") {
		t.Errorf("Expected designated error text, got %q", msgs.Text())
	}
	if !strings.Contains(doc.Find(".fetch-status").Text(), "transport error") {
		t.Errorf("Expected fetch status line, got %q", doc.Find(".fetch-status").Text())
	}
	if len(doc.Find("#gauge").Nodes) != 0 {
		t.Error("Expected no gauge mount node in the no-data state")
	}
	if len(doc.Find(".prediction-value").Nodes) != 0 {
		t.Error("Expected no prediction headline in the no-data state")
	}
}

func TestWebDashboardResponder_ServePage(t *testing.T) {
	t.Parallel()

	r := &WebDashboardResponder{}
	page, err := r.RenderPage(fileVariantResult(t))
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	handler := r.ServePage(page)

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	result := recorder.Result()
	if result.StatusCode != 200 {
		t.Errorf("Expected a status code of 200, got %d", result.StatusCode)
	}
	if ct := result.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected an HTML content type, got %q", ct)
	}
	body, _ := io.ReadAll(result.Body)
	if string(body) != string(page) {
		t.Error("Expected the precomputed document to be served unchanged")
	}

	// Identical bytes on a second request.
	second := httptest.NewRecorder()
	handler(second, httptest.NewRequest(http.MethodGet, "/", nil))
	secondBody, _ := io.ReadAll(second.Result().Body)
	if string(secondBody) != string(body) {
		t.Error("Expected every visitor to get the same document")
	}
}

func TestWebDashboardResponder_ServePage_OtherPathsNotFound(t *testing.T) {
	t.Parallel()

	r := &WebDashboardResponder{}
	handler := r.ServePage([]byte("page"))

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest(http.MethodGet, "/elsewhere", nil))

	if recorder.Result().StatusCode != 404 {
		t.Errorf("Expected a status code of 404, got %d", recorder.Result().StatusCode)
	}
}

func TestWebSimpleResponder_OnHealthy(t *testing.T) {
	t.Parallel()

	r := &WebSimpleResponder{}
	recorder := httptest.NewRecorder()
	r.OnHealthy(recorder)

	body, _ := io.ReadAll(recorder.Result().Body)
	if string(body) != "ok\n" {
		t.Errorf("Expected a body of 'ok\\n', got %q", body)
	}
}
