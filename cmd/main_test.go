package main

import (
	"context"
	"os"
	"testing"

	"github.com/mondialsim/mondial/internal/app"
	"github.com/mondialsim/mondial/internal/config"
	"github.com/mondialsim/mondial/internal/dataset"
	"github.com/mondialsim/mondial/internal/montecarlo"
	"github.com/mondialsim/mondial/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("MONDIAL_RUNS", "50")
			_ = os.Setenv("MONDIAL_WORKER_COUNT", "4")
			_ = os.Setenv("MONDIAL_SEED", "7")
			defer func() {
				_ = os.Unsetenv("MONDIAL_RUNS")
				_ = os.Unsetenv("MONDIAL_WORKER_COUNT")
				_ = os.Unsetenv("MONDIAL_SEED")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Runs, convey.ShouldEqual, 50)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.Seed, convey.ShouldEqual, 7)
			})
		})

		convey.Convey("When testing service creation", func() {
			template, err := dataset.Template()
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the service should be creatable", func() {
				svc, err := app.New(app.WithTemplate(template))
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And the pool should be creatable on top of it", func() {
				svc, err := app.New(app.WithTemplate(template))
				convey.So(err, convey.ShouldBeNil)

				pool := montecarlo.NewPool(svc,
					montecarlo.WithWorkerCount(2),
					montecarlo.WithBaseSeed(7),
				)
				convey.So(pool, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestPrintReport(t *testing.T) {
	convey.Convey("Given a finished Monte Carlo batch", t, func() {
		template, err := dataset.Template()
		convey.So(err, convey.ShouldBeNil)

		svc, err := app.New(app.WithTemplate(template))
		convey.So(err, convey.ShouldBeNil)

		pool := montecarlo.NewPool(svc,
			montecarlo.WithWorkerCount(2),
			montecarlo.WithBaseSeed(1),
		)

		aggregate, err := pool.Run(context.Background(), dataset.Teams(), dataset.Groups(), nil, 10)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When printing the report", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(func() { printReport(aggregate) }, convey.ShouldNotPanic)
			})
		})
	})
}
