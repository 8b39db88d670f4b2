package data

import "time"

// FetchStatus classifies the outcome of a live question fetch, so the
// renderer can show an explicit no-data state instead of inferring one
// from a missing value.
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchNotFound
	FetchTransportError
	FetchParseError
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchNotFound:
		return "not found"
	case FetchTransportError:
		return "transport error"
	case FetchParseError:
		return "parse error"
	default:
		return "unknown"
	}
}

// Question is the current snapshot of a question on the forecasting
// platform, as returned by its API.
type Question struct {
	Probability        float64
	PredictionCount    int
	CreatedTime        time.Time
	CloseTime          time.Time
	ResolutionCriteria string
	Description        string
}

// QuestionResult carries a Question together with how fetching it went.
// Question is only meaningful when Status is FetchOK.
type QuestionResult struct {
	Status   FetchStatus
	Question Question
	Err      error
}

func (r QuestionResult) OK() bool {
	return r.Status == FetchOK
}
