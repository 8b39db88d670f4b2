package controllers

import (
	"context"

	"github.com/HebaF/metacalculus-dashboard-WIP/data"
)

type ObservationSource interface {
	LoadObservations(ctx context.Context) ([]data.Observation, error)
}

type QuestionSource interface {
	FetchQuestion(ctx context.Context, id int64) data.QuestionResult
}
