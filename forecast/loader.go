package forecast

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
)

const (
	columnEndTime         = "End Time"
	columnProbability     = "Probability Yes"
	columnForecasterCount = "Forecaster Count"
	columnScheme          = "Forecaster Username"
)

// Accepted timestamp layouts for the End Time column. Exports vary
// between date-only and full timestamps.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FileSource loads observations from a CSV export on disk.
type FileSource struct {
	Path string
}

func (s *FileSource) LoadObservations(ctx context.Context) ([]data.Observation, error) {
	l := ctxlogrus.Get(ctx)

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening observation file %s", s.Path)
	}
	defer f.Close()

	obs, err := ReadObservations(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading observation file %s", s.Path)
	}

	l.Infof("Loaded %d observations from %s", len(obs), s.Path)
	return obs, nil
}

// ReadObservations parses CSV rows into observations. Column positions
// are discovered from the header row; extra columns are ignored. The
// scheme column is optional, the rest are required. Row order is
// preserved, since the export is ordered by End Time.
func ReadObservations(r io.Reader) ([]data.Observation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading header row")
	}

	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnEndTime, columnProbability, columnForecasterCount} {
		if _, ok := cols[required]; !ok {
			return nil, errors.Errorf("missing required column %q", required)
		}
	}
	schemeCol, hasScheme := cols[columnScheme]

	var obs []data.Observation
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}

		endTime, err := parseTime(record[cols[columnEndTime]])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}

		probability, err := strconv.ParseFloat(strings.TrimSpace(record[cols[columnProbability]]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: parsing probability", row)
		}
		if probability < 0 || probability > 1 {
			return nil, errors.Errorf("row %d: probability %g out of range", row, probability)
		}

		count, err := strconv.Atoi(strings.TrimSpace(record[cols[columnForecasterCount]]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: parsing forecaster count", row)
		}

		o := data.Observation{
			EndTime:         endTime,
			Probability:     probability,
			ForecasterCount: count,
		}
		if hasScheme {
			o.Scheme = strings.TrimSpace(record[schemeCol])
		}
		obs = append(obs, o)
	}

	return obs, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unparseable time %q", s)
}
