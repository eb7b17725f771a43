package match_test

import (
	"math/rand"
	"testing"

	"github.com/mondialsim/mondial/internal/domain/match"
	"github.com/mondialsim/mondial/internal/domain/team"
	. "github.com/smartystreets/goconvey/convey"
)

func makeTeam(code string, attack, defense, midfield, form float64) *team.Team {
	return &team.Team{
		Code:     code,
		Name:     code,
		Attack:   attack,
		Defense:  defense,
		Midfield: midfield,
		Form:     form,
		Roster: map[team.Position][]string{
			team.Forward:    {code + " FW1", code + " FW2"},
			team.Midfielder: {code + " MF1", code + " MF2"},
			team.Defender:   {code + " DF1"},
			team.Goalkeeper: {code + " GK1"},
		},
	}
}

func TestExpectedGoals(t *testing.T) {
	Convey("Given a match engine with default settings", t, func() {
		engine := match.NewEngine()

		Convey("When both sides are exactly league average with neutral form", func() {
			a := makeTeam("AAA", 1.4, 1.4, 1.4, 0.5)
			b := makeTeam("BBB", 1.4, 1.4, 1.4, 0.5)

			lambdaA, lambdaB := engine.ExpectedGoals(a, b)

			Convey("Then both rates equal the base average", func() {
				So(lambdaA, ShouldAlmostEqual, 1.35, 1e-9)
				So(lambdaB, ShouldAlmostEqual, 1.35, 1e-9)
			})
		})

		Convey("When an elite attack in top form meets a weak defense", func() {
			a := makeTeam("AAA", 2.5, 1.4, 1.4, 1.0)
			b := makeTeam("BBB", 1.4, 0.5, 1.4, 0.5)

			lambdaA, _ := engine.ExpectedGoals(a, b)

			Convey("Then the rate is clamped to the ceiling", func() {
				So(lambdaA, ShouldEqual, 4.0)
			})
		})

		Convey("When a weak attack out of form meets an elite defense", func() {
			a := makeTeam("AAA", 0.5, 1.4, 1.4, 0.0)
			b := makeTeam("BBB", 1.4, 2.5, 1.4, 0.5)

			lambdaA, _ := engine.ExpectedGoals(a, b)

			Convey("Then the rate is clamped to the floor", func() {
				So(lambdaA, ShouldEqual, 0.3)
			})
		})

		Convey("When form improves", func() {
			a := makeTeam("AAA", 1.4, 1.4, 1.4, 0.0)
			b := makeTeam("BBB", 1.4, 1.4, 1.4, 0.5)

			low, _ := engine.ExpectedGoals(a, b)
			a.Form = 1.0
			high, _ := engine.ExpectedGoals(a, b)

			Convey("Then the rate grows with it", func() {
				So(low, ShouldAlmostEqual, 1.35*0.85, 1e-9)
				So(high, ShouldAlmostEqual, 1.35*1.15, 1e-9)
			})
		})
	})
}

func TestSimulate(t *testing.T) {
	Convey("Given a match engine and two mid-table teams", t, func() {
		engine := match.NewEngine()
		a := makeTeam("AAA", 1.4, 1.4, 1.4, 0.5)
		b := makeTeam("BBB", 1.2, 1.3, 1.1, 0.4)

		Convey("When simulating with draws allowed", func() {
			rng := rand.New(rand.NewSource(42))
			result := engine.Simulate(rng, a, b, true, false)

			Convey("Then the result is internally consistent", func() {
				So(result.TeamA, ShouldEqual, "AAA")
				So(result.TeamB, ShouldEqual, "BBB")
				So(result.ScoreA, ShouldBeGreaterThanOrEqualTo, 0)
				So(result.ScoreB, ShouldBeGreaterThanOrEqualTo, 0)
				So(len(result.Goals), ShouldEqual, result.ScoreA+result.ScoreB)
				So(result.ExtraTime, ShouldBeFalse)
				So(result.Penalties, ShouldBeFalse)

				switch {
				case result.ScoreA > result.ScoreB:
					So(result.Winner, ShouldEqual, "AAA")
				case result.ScoreB > result.ScoreA:
					So(result.Winner, ShouldEqual, "BBB")
				default:
					So(result.Winner, ShouldBeEmpty)
				}
			})

			Convey("Then derived stats respect their bounds", func() {
				So(result.PossessionA, ShouldBeBetweenOrEqual, 25.0, 75.0)
				So(result.ShotsA, ShouldBeGreaterThanOrEqualTo, result.ScoreA)
				So(result.ShotsB, ShouldBeGreaterThanOrEqualTo, result.ScoreB)
				So(result.ShotsOnTargetA, ShouldBeGreaterThanOrEqualTo, result.ScoreA)
				So(result.ShotsOnTargetA, ShouldBeLessThanOrEqualTo, result.ShotsA)
				So(result.ShotsOnTargetB, ShouldBeLessThanOrEqualTo, result.ShotsB)
				So(result.XGA, ShouldBeGreaterThan, 0)
				So(result.XGB, ShouldBeGreaterThan, 0)
			})

			Convey("Then goals are ordered by minute with valid attributions", func() {
				for i, g := range result.Goals {
					So(g.Minute, ShouldBeBetweenOrEqual, 1, 90)
					So(g.Team, ShouldBeIn, []string{"AAA", "BBB"})
					So(g.Scorer, ShouldNotBeEmpty)
					if i > 0 {
						So(g.Minute, ShouldBeGreaterThanOrEqualTo, result.Goals[i-1].Minute)
					}
				}
			})
		})

		Convey("When simulating many knockout matches", func() {
			rng := rand.New(rand.NewSource(7))

			Convey("Then every result has a winner", func() {
				for i := 0; i < 200; i++ {
					result := engine.Simulate(rng, a, b, false, false)
					So(result.Winner, ShouldBeIn, []string{"AAA", "BBB"})
					So(result.Loser(), ShouldBeIn, []string{"AAA", "BBB"})
					So(result.Winner, ShouldNotEqual, result.Loser())
					if result.Penalties {
						So(result.ExtraTime, ShouldBeTrue)
						So(result.TotalA(), ShouldEqual, result.TotalB())
						So(result.PenaltyScoreA, ShouldNotEqual, result.PenaltyScoreB)
					}
					if result.ExtraTime {
						So(result.ScoreA, ShouldEqual, result.ScoreB)
					}
				}
			})
		})

		Convey("When simulating twice with the same seed", func() {
			first := engine.Simulate(rand.New(rand.NewSource(99)), a, b, false, true)
			second := engine.Simulate(rand.New(rand.NewSource(99)), a, b, false, true)

			Convey("Then the results are identical", func() {
				So(second, ShouldResemble, first)
			})
		})

		Convey("When simulating with commentary requested", func() {
			rng := rand.New(rand.NewSource(3))
			result := engine.Simulate(rng, a, b, true, true)

			Convey("Then commentary lines are generated", func() {
				So(len(result.Commentary), ShouldBeGreaterThan, 0)
				So(result.Commentary[0], ShouldContainSubstring, "AAA")
				So(result.Commentary[0], ShouldContainSubstring, "BBB")
			})
		})
	})

	Convey("Given a lopsided midfield", t, func() {
		engine := match.NewEngine()
		a := makeTeam("AAA", 1.4, 1.4, 2.5, 0.5)
		b := makeTeam("BBB", 1.4, 1.4, 0.5, 0.5)

		Convey("When simulating", func() {
			result := engine.Simulate(rand.New(rand.NewSource(1)), a, b, true, false)

			Convey("Then possession is clamped at the ceiling", func() {
				So(result.PossessionA, ShouldEqual, 75.0)
			})
		})
	})

	Convey("Given a far stronger team", t, func() {
		engine := match.NewEngine()
		strong := makeTeam("STR", 2.4, 2.4, 2.0, 0.9)
		weak := makeTeam("WEA", 0.6, 0.6, 0.8, 0.1)
		rng := rand.New(rand.NewSource(11))

		Convey("When playing a long series", func() {
			wins := 0
			const n = 300
			for i := 0; i < n; i++ {
				if engine.Simulate(rng, strong, weak, false, false).Winner == "STR" {
					wins++
				}
			}

			Convey("Then the stronger side wins the clear majority", func() {
				So(wins, ShouldBeGreaterThan, n*2/3)
			})
		})
	})
}

func TestSimulatePenalties(t *testing.T) {
	Convey("Given a penalty shootout", t, func() {
		engine := match.NewEngine()
		a := makeTeam("AAA", 1.5, 1.4, 1.4, 0.5)
		b := makeTeam("BBB", 1.3, 1.4, 1.4, 0.5)
		rng := rand.New(rand.NewSource(21))

		Convey("When running many shootouts", func() {
			Convey("Then every shootout is decided", func() {
				for i := 0; i < 500; i++ {
					scoreA, scoreB := engine.SimulatePenalties(rng, a, b)
					So(scoreA, ShouldNotEqual, scoreB)
					So(scoreA, ShouldBeGreaterThanOrEqualTo, 0)
					So(scoreB, ShouldBeGreaterThanOrEqualTo, 0)
				}
			})
		})
	})
}

func TestEngineOptions(t *testing.T) {
	Convey("Given a match engine with a custom goal average", t, func() {
		engine := match.NewEngine(match.WithAverageGoals(2.70))
		a := makeTeam("AAA", 1.4, 1.4, 1.4, 0.5)
		b := makeTeam("BBB", 1.4, 1.4, 1.4, 0.5)

		Convey("When computing expected goals", func() {
			lambdaA, lambdaB := engine.ExpectedGoals(a, b)

			Convey("Then the custom base scales the rates", func() {
				So(lambdaA, ShouldAlmostEqual, 2.70, 1e-9)
				So(lambdaB, ShouldAlmostEqual, 2.70, 1e-9)
			})
		})
	})
}
