package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/HebaF/metacalculus-dashboard-WIP/charts"
	"github.com/HebaF/metacalculus-dashboard-WIP/config"
	"github.com/HebaF/metacalculus-dashboard-WIP/controllers"
	"github.com/HebaF/metacalculus-dashboard-WIP/forecast"
	"github.com/HebaF/metacalculus-dashboard-WIP/metaculus"
	"github.com/HebaF/metacalculus-dashboard-WIP/metrics"
	"github.com/HebaF/metacalculus-dashboard-WIP/responders"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Unable to load configuration: %s", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Unknown log level %q: %s", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx := ctxlogrus.WithFields(context.Background(), logrus.Fields{
		"source": string(cfg.Source),
	})
	l := ctxlogrus.Get(ctx)

	dashboard := &controllers.Dashboard{
		QuestionID: cfg.QuestionID,
		Scheme:     cfg.Scheme,
	}
	switch cfg.Source {
	case config.SourceFile:
		dashboard.Observations = &forecast.FileSource{Path: cfg.DataPath}
		dashboard.Headroom = charts.HeadroomFile
	case config.SourceLive:
		dashboard.Questions = metaculus.NewClient()
		dashboard.Headroom = charts.HeadroomLive
	}

	// All data loading, aggregation and chart building happens here,
	// before the listener starts; every visitor gets the same document.
	result, err := dashboard.Prepare(ctx)
	if err != nil {
		logrus.Fatalf("Unable to prepare dashboard: %s", err)
	}

	web := &responders.WebDashboardResponder{}
	page, err := web.RenderPage(result)
	if err != nil {
		logrus.Fatalf("Unable to render dashboard page: %s", err)
	}

	simple := &responders.WebSimpleResponder{}
	mux := http.NewServeMux()
	mux.HandleFunc("/", web.ServePage(page))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		simple.OnHealthy(w)
	})
	mux.Handle("/metrics", metrics.Handler())

	l.Infof("Listening on :%d", cfg.Port)
	logrus.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), mux))
}
