package forecast

import (
	"fmt"
	"strconv"
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
	"github.com/pkg/errors"
)

var ErrNoObservations = errors.New("no observations available")
var ErrSchemeUnknown = errors.New("no observations for requested weighting scheme")

// Summary is the current state of a question, ready for display.
type Summary struct {
	Percentage float64
	Count      int
	HasCount   bool
	Scheme     string
	EndTime    time.Time
}

// Latest returns the summary for the most recent observation matching the
// given weighting scheme, relying on the source ordering by end time. The
// empty scheme matches every row, which is the behavior wanted for exports
// without a scheme column. A named scheme with no matching rows is an
// error; callers decide whether that aborts startup.
func Latest(obs []data.Observation, scheme string) (Summary, error) {
	if len(obs) == 0 {
		return Summary{}, ErrNoObservations
	}

	for i := len(obs) - 1; i >= 0; i-- {
		o := obs[i]
		if scheme != "" && o.Scheme != scheme {
			continue
		}
		return Summary{
			Percentage: o.Probability * 100,
			Count:      o.ForecasterCount,
			HasCount:   true,
			Scheme:     o.Scheme,
			EndTime:    o.EndTime,
		}, nil
	}

	return Summary{}, errors.Wrapf(ErrSchemeUnknown, "scheme %q", scheme)
}

// LiveSummary builds a summary from a live question snapshot. A zero
// prediction count means the field was absent and displays as N/A.
func LiveSummary(q data.Question) Summary {
	return Summary{
		Percentage: q.Probability * 100,
		Count:      q.PredictionCount,
		HasCount:   q.PredictionCount > 0,
		EndTime:    q.CreatedTime,
	}
}

// Schemes lists the distinct weighting scheme labels present, in first
// appearance order.
func Schemes(obs []data.Observation) []string {
	var schemes []string
	seen := make(map[string]bool)
	for _, o := range obs {
		if seen[o.Scheme] {
			continue
		}
		seen[o.Scheme] = true
		schemes = append(schemes, o.Scheme)
	}
	return schemes
}

func (s Summary) PercentLabel() string {
	return fmt.Sprintf("%.1f%%", s.Percentage)
}

func (s Summary) CountLabel() string {
	if !s.HasCount {
		return "N/A"
	}
	return strconv.Itoa(s.Count)
}
