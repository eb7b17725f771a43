package team_test

import (
	"testing"

	"github.com/mondialsim/mondial/internal/domain/team"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClampRating(t *testing.T) {
	Convey("Given the rating bounds", t, func() {
		Convey("When clamping values around the range", func() {
			So(team.ClampRating(0.1), ShouldEqual, team.MinRating)
			So(team.ClampRating(3.7), ShouldEqual, team.MaxRating)
			So(team.ClampRating(1.0), ShouldEqual, 1.0)
			So(team.ClampRating(team.MinRating), ShouldEqual, team.MinRating)
			So(team.ClampRating(team.MaxRating), ShouldEqual, team.MaxRating)
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given a team with out-of-range fields", t, func() {
		tm := &team.Team{
			Code:     "XXX",
			Attack:   9.0,
			Defense:  0.0,
			Midfield: -1.0,
			Form:     1.5,
		}

		Convey("When normalizing", func() {
			tm.Normalize()

			Convey("Then every field lands inside its range", func() {
				So(tm.Attack, ShouldEqual, team.MaxRating)
				So(tm.Defense, ShouldEqual, team.MinRating)
				So(tm.Midfield, ShouldEqual, team.MinRating)
				So(tm.Form, ShouldEqual, 1.0)
			})
		})
	})

	Convey("Given a team with negative form", t, func() {
		tm := &team.Team{Code: "YYY", Attack: 1.0, Defense: 1.0, Midfield: 1.0, Form: -0.2}
		tm.Normalize()

		Convey("Then form is floored at zero", func() {
			So(tm.Form, ShouldEqual, 0.0)
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Given a team with a roster", t, func() {
		tm := &team.Team{
			Code:   "BRA",
			Attack: 2.0,
			Roster: map[team.Position][]string{
				team.Forward:    {"Vinicius Jr", "Rodrygo"},
				team.Goalkeeper: {"Alisson"},
			},
		}

		Convey("When cloning and mutating the copy", func() {
			c := tm.Clone()
			c.Attack = 0.5
			c.Roster[team.Forward][0] = "Someone Else"

			Convey("Then the original is untouched", func() {
				So(tm.Attack, ShouldEqual, 2.0)
				So(tm.Roster[team.Forward][0], ShouldEqual, "Vinicius Jr")
			})
		})
	})

	Convey("Given a registry of teams", t, func() {
		teams := map[string]*team.Team{
			"BRA": {Code: "BRA", Attack: 2.0},
			"ARG": {Code: "ARG", Attack: 2.1},
		}

		Convey("When deep-copying it", func() {
			copied := team.CloneAll(teams)
			copied["BRA"].Attack = 0.5

			Convey("Then the source registry is isolated", func() {
				So(teams["BRA"].Attack, ShouldEqual, 2.0)
				So(copied["ARG"].Code, ShouldEqual, "ARG")
			})
		})
	})
}

func TestAdjustments(t *testing.T) {
	Convey("Given a team and an additive adjustment", t, func() {
		tm := &team.Team{Code: "GER", Attack: 2.0, Defense: 1.5, Midfield: 1.8}
		adj := team.Adjustment{AttackDelta: 1.0, DefenseDelta: -2.0}

		Convey("When applying it", func() {
			adj.Apply(tm)

			Convey("Then results are clamped to the rating range", func() {
				So(tm.Attack, ShouldEqual, team.MaxRating)
				So(tm.Defense, ShouldEqual, team.MinRating)
				So(tm.Midfield, ShouldEqual, 1.8)
			})
		})
	})

	Convey("Given a multiplicative adjustment", t, func() {
		tm := &team.Team{Code: "FRA", Attack: 1.0, Defense: 1.0, Midfield: 1.0}
		adj := team.Adjustment{AttackMult: 1.5, MidfieldMult: 0.4}

		Convey("When applying it", func() {
			adj.Apply(tm)

			Convey("Then zero multipliers count as identity", func() {
				So(tm.Attack, ShouldEqual, 1.5)
				So(tm.Defense, ShouldEqual, 1.0)
				So(tm.Midfield, ShouldEqual, team.MinRating)
			})
		})
	})

	Convey("Given a registry-wide adjustment map", t, func() {
		teams := map[string]*team.Team{
			"ESP": {Code: "ESP", Attack: 1.0, Defense: 1.0, Midfield: 1.0},
			"POR": {Code: "POR", Attack: 1.0, Defense: 1.0, Midfield: 1.0},
		}

		Convey("When applying adjustments for one team", func() {
			team.ApplyAdjustments(teams, map[string]team.Adjustment{
				"ESP": {AttackDelta: 0.5},
			})

			Convey("Then only the named team changes", func() {
				So(teams["ESP"].Attack, ShouldEqual, 1.5)
				So(teams["POR"].Attack, ShouldEqual, 1.0)
			})
		})
	})
}
