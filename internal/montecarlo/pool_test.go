package montecarlo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	service "github.com/mondialsim/mondial/internal/app"
	"github.com/mondialsim/mondial/internal/dataset"
	"github.com/mondialsim/mondial/internal/montecarlo"
	. "github.com/smartystreets/goconvey/convey"
)

func newSimulator() *service.Service {
	tmpl, err := dataset.Template()
	So(err, ShouldBeNil)

	svc, err := service.New(service.WithTemplate(tmpl))
	So(err, ShouldBeNil)
	return svc
}

func TestPoolRun(t *testing.T) {
	Convey("Given a Monte Carlo pool over the shipped tournament", t, func() {
		pool := montecarlo.NewPool(newSimulator(),
			montecarlo.WithWorkerCount(4),
			montecarlo.WithBaseSeed(1),
		)
		ctx := context.Background()
		teams := dataset.Teams()
		groups := dataset.Groups()

		Convey("When running a small batch", func() {
			const n = 60
			agg, err := pool.Run(ctx, teams, groups, nil, n)

			Convey("Then every team's stage buckets sum to the run count", func() {
				So(err, ShouldBeNil)
				So(agg.Runs, ShouldEqual, n)

				for code := range teams {
					total := 0
					for _, stage := range montecarlo.Stages() {
						total += agg.StageCount(code, stage)
					}
					So(total, ShouldEqual, n)
				}
			})

			Convey("Then exactly one champion is tallied per run", func() {
				winners := 0
				for code := range teams {
					winners += agg.StageCount(code, montecarlo.StageWinner)
				}
				So(winners, ShouldEqual, n)
			})

			Convey("Then percentages are consistent with counts", func() {
				for code := range teams {
					count := agg.StageCount(code, montecarlo.StageWinner)
					want := math.Round(float64(count)/float64(n)*1000) / 10
					So(agg.WinPercentage(code), ShouldEqual, want)
				}
			})

			Convey("Then a most likely final exists", func() {
				pair, pct, ok := agg.MostLikelyFinal()
				So(ok, ShouldBeTrue)
				So(pct, ShouldBeGreaterThan, 0)
				So(pair.A, ShouldBeLessThan, pair.B)
				So(agg.FinalPairCount(pair.B, pair.A), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When running the same batch with different worker counts", func() {
			serial := montecarlo.NewPool(newSimulator(),
				montecarlo.WithWorkerCount(1),
				montecarlo.WithBaseSeed(99),
			)
			parallel := montecarlo.NewPool(newSimulator(),
				montecarlo.WithWorkerCount(8),
				montecarlo.WithBaseSeed(99),
			)

			aggA, errA := serial.Run(ctx, teams, groups, nil, 40)
			aggB, errB := parallel.Run(ctx, teams, groups, nil, 40)

			Convey("Then per-run seeding makes the tallies identical", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(aggB.StageTable(), ShouldResemble, aggA.StageTable())
			})
		})

		Convey("When the run count is not positive", func() {
			_, err := pool.Run(ctx, teams, groups, nil, 0)
			So(err, ShouldNotBeNil)
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := pool.Run(cancelled, teams, groups, nil, 10_000)

			Convey("Then the batch stops with the context error", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestPoolDominantTeam(t *testing.T) {
	Convey("Given one overwhelmingly strong team in a uniform field", t, func() {
		teams := dataset.Teams()
		for _, tm := range teams {
			tm.Attack = 0.5
			tm.Defense = 0.5
			tm.Midfield = 0.5
			tm.Form = 0.0
		}
		teams["MEX"].Attack = 2.5
		teams["MEX"].Defense = 2.5
		teams["MEX"].Midfield = 2.5
		teams["MEX"].Form = 1.0

		pool := montecarlo.NewPool(newSimulator(),
			montecarlo.WithWorkerCount(4),
			montecarlo.WithBaseSeed(7),
		)

		Convey("When running a large batch", func() {
			const n = 1000
			agg, err := pool.Run(context.Background(), teams, dataset.Groups(), nil, n)

			Convey("Then the dominant team wins the overwhelming majority", func() {
				So(err, ShouldBeNil)
				So(agg.WinPercentage("MEX"), ShouldBeGreaterThan, 90.0)
			})
		})
	})
}

func TestStages(t *testing.T) {
	Convey("Given the stage enumeration", t, func() {
		Convey("When listing the stages", func() {
			stages := montecarlo.Stages()

			Convey("Then they run from group exit to winner", func() {
				So(stages, ShouldHaveLength, montecarlo.NumStages)
				So(stages[0], ShouldEqual, montecarlo.StageGroupExit)
				So(stages[len(stages)-1], ShouldEqual, montecarlo.StageWinner)
				So(montecarlo.StageGroupExit.String(), ShouldEqual, "Group Exit")
				So(montecarlo.StageWinner.String(), ShouldEqual, "Winner")
			})
		})
	})
}
