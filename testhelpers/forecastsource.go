package testhelpers

import (
	"context"
	"testing"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
)

type ObservationSource struct {
	LoadObservationsFunc func(ctx context.Context) ([]data.Observation, error)
}

func NewObservationSource(t *testing.T) *ObservationSource {
	return &ObservationSource{
		LoadObservationsFunc: func(ctx context.Context) ([]data.Observation, error) {
			t.Error("LoadObservations should not be called")
			return nil, nil
		},
	}
}

func (s *ObservationSource) LoadObservations(ctx context.Context) ([]data.Observation, error) {
	return s.LoadObservationsFunc(ctx)
}

type QuestionSource struct {
	FetchQuestionFunc func(ctx context.Context, id int64) data.QuestionResult
}

func NewQuestionSource(t *testing.T) *QuestionSource {
	return &QuestionSource{
		FetchQuestionFunc: func(ctx context.Context, id int64) data.QuestionResult {
			t.Error("FetchQuestion should not be called")
			return data.QuestionResult{}
		},
	}
}

func (s *QuestionSource) FetchQuestion(ctx context.Context, id int64) data.QuestionResult {
	return s.FetchQuestionFunc(ctx, id)
}
