package controllers

import (
	"context"
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/charts"
	"github.com/HebaF/metacalculus-dashboard-WIP/data"
	"github.com/HebaF/metacalculus-dashboard-WIP/forecast"
	"github.com/HebaF/metacalculus-dashboard-WIP/metrics"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const QuestionTitle = `Will an avian influenza virus in humans be declared a "Public Health Emergency of International Concern" by the WHO before 2030?`

const QuestionURL = "https://www.metaculus.com/questions/23387/"

// Shown for the file variant, where the export carries no criteria text.
const defaultResolutionCriteria = `This question will resolve as YES if the World Health Organization (WHO) declares a Public Health Emergency of International Concern (PHEIC) for any avian influenza virus strain in humans at any point before 2030.

The declaration must specifically cite an avian influenza virus (e.g. H5N1, H7N9) as the cause.`

// Dashboard assembles everything the page needs. Exactly one of the two
// sources is set: Observations for the file variant, Questions for the
// live variant.
type Dashboard struct {
	Observations ObservationSource
	Questions    QuestionSource
	QuestionID   int64
	Scheme       string
	Headroom     float64
}

// DashboardResult is the immutable page state, built once at startup and
// shared by every request. A nil Summary is the no-data state; Fetch then
// says why.
type DashboardResult struct {
	Title              string
	QuestionURL        string
	Summary            *forecast.Summary
	Observations       []data.Observation
	Fetch              *data.QuestionResult
	Gauge              *charts.Figure
	Timeline           *charts.Figure
	ResolutionCriteria string
	Description        string
	CloseTime          time.Time
	GeneratedAt        time.Time
}

// Prepare loads the configured source and derives the page state. File
// variant errors abort startup; live variant failures degrade into the
// no-data page state instead.
func (c *Dashboard) Prepare(ctx context.Context) (*DashboardResult, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Dashboard",
	})
	l := ctxlogrus.Get(ctx)

	result := &DashboardResult{
		Title:              QuestionTitle,
		QuestionURL:        QuestionURL,
		ResolutionCriteria: defaultResolutionCriteria,
		GeneratedAt:        time.Now().UTC(),
	}

	switch {
	case c.Observations != nil:
		if err := c.prepareFromObservations(ctx, result); err != nil {
			return nil, err
		}
	case c.Questions != nil:
		c.prepareFromQuestion(ctx, result)
	default:
		return nil, errors.New("no data source configured")
	}

	if result.Summary != nil {
		gauge := charts.Gauge(result.Summary.Percentage)
		result.Gauge = &gauge
		l.Infof("Prepared dashboard at %s with %s forecasters", result.Summary.PercentLabel(), result.Summary.CountLabel())
	} else {
		l.Warn("Prepared dashboard in no-data state")
	}

	return result, nil
}

func (c *Dashboard) prepareFromObservations(ctx context.Context, result *DashboardResult) error {
	obs, err := c.Observations.LoadObservations(ctx)
	if err != nil {
		return errors.Wrap(err, "loading observations")
	}
	metrics.ObservationsLoaded.Set(float64(len(obs)))

	summary, err := forecast.Latest(obs, c.Scheme)
	if err != nil {
		return errors.Wrap(err, "summarizing observations")
	}

	timeline := charts.Timeline(obs, charts.TimelineOptions{
		Headroom:        c.headroom(),
		HighlightScheme: c.Scheme,
	})

	result.Summary = &summary
	result.Observations = obs
	result.Timeline = &timeline
	return nil
}

func (c *Dashboard) prepareFromQuestion(ctx context.Context, result *DashboardResult) {
	l := ctxlogrus.Get(ctx)

	fetch := c.Questions.FetchQuestion(ctx, c.QuestionID)
	metrics.QuestionFetches.WithLabelValues(fetch.Status.String()).Inc()
	result.Fetch = &fetch

	if !fetch.OK() {
		l.Warnf("Serving no-data page, question fetch status: %s", fetch.Status)
		return
	}

	summary := forecast.LiveSummary(fetch.Question)
	result.Summary = &summary
	result.Description = fetch.Question.Description
	result.CloseTime = fetch.Question.CloseTime
	if fetch.Question.ResolutionCriteria != "" {
		result.ResolutionCriteria = fetch.Question.ResolutionCriteria
	}
}

func (c *Dashboard) headroom() float64 {
	if c.Headroom != 0 {
		return c.Headroom
	}
	return charts.HeadroomFile
}
