// Package metaculus fetches a question snapshot from the Metaculus API.
package metaculus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://www.metaculus.com"

const userAgent = "metaculus-dashboard (github.com/HebaF/metacalculus-dashboard-WIP)"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Limiter:    rate.NewLimiter(1, 2),
	}
}

// questionPayload is the subset of the question endpoint response the
// dashboard uses. Absent fields stay at their zero values.
type questionPayload struct {
	CommunityPrediction struct {
		Q2 float64 `json:"q2"`
	} `json:"community_prediction"`
	PredictionCount    int    `json:"prediction_count"`
	CreatedTime        string `json:"created_time"`
	CloseTime          string `json:"close_time"`
	ResolutionCriteria string `json:"resolution_criteria"`
	Description        string `json:"description"`
}

// FetchQuestion issues the single startup GET for a question and maps the
// outcome to a typed result. It never returns an error by design; every
// failure mode becomes a FetchStatus the renderer shows as a no-data state.
func (c *Client) FetchQuestion(ctx context.Context, id int64) data.QuestionResult {
	l := ctxlogrus.Get(ctx)

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			l.Errorf("Question fetch failed: %s", err)
			return transportFailure(errors.Wrap(err, "waiting for rate limiter"))
		}
	}

	url := fmt.Sprintf("%s/api2/questions/%d/", strings.TrimSuffix(c.BaseURL, "/"), id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		l.Errorf("Question fetch failed: %s", err)
		return transportFailure(errors.Wrap(err, "building question request"))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	l.Debugf("Fetching question %d from %s", id, c.BaseURL)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		l.Errorf("Question fetch failed: %s", err)
		return transportFailure(errors.Wrap(err, "fetching question"))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		l.Warnf("Question %d not found", id)
		return data.QuestionResult{
			Status: data.FetchNotFound,
			Err:    errors.Errorf("question %d not found", id),
		}
	}
	if resp.StatusCode != http.StatusOK {
		l.Errorf("Question fetch failed with status %d", resp.StatusCode)
		return transportFailure(errors.Errorf("unexpected status %d fetching question %d", resp.StatusCode, id))
	}

	var payload questionPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		l.Warnf("Unparseable question response: %s", err)
		return data.QuestionResult{
			Status: data.FetchParseError,
			Err:    errors.Wrap(err, "decoding question response"),
		}
	}

	return data.QuestionResult{
		Status:   data.FetchOK,
		Question: payloadToQuestion(payload),
	}
}

func payloadToQuestion(payload questionPayload) data.Question {
	return data.Question{
		Probability:        payload.CommunityPrediction.Q2,
		PredictionCount:    payload.PredictionCount,
		CreatedTime:        parseTime(payload.CreatedTime),
		CloseTime:          parseTime(payload.CloseTime),
		ResolutionCriteria: PlainText(payload.ResolutionCriteria),
		Description:        PlainText(payload.Description),
	}
}

func transportFailure(err error) data.QuestionResult {
	return data.QuestionResult{
		Status: data.FetchTransportError,
		Err:    err,
	}
}

// API timestamps appear both with and without fractional seconds. An
// unparseable timestamp degrades to the zero time rather than failing
// the whole snapshot.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
