package dataset

// HeadToHead is a historical record between two teams, oriented to the
// argument order of the lookup that returned it.
type HeadToHead struct {
	Played int
	AWins  int
	Draws  int
	BWins  int
}

// LookupHeadToHead returns the historical record between two teams,
// order-independently, or false when none is recorded. The table is data
// only: the match engine's goal model deliberately does not consume it.
func LookupHeadToHead(a, b string) (HeadToHead, bool) {
	if r, ok := headToHead[[2]string{a, b}]; ok {
		return r, true
	}
	if r, ok := headToHead[[2]string{b, a}]; ok {
		return HeadToHead{Played: r.Played, AWins: r.BWins, Draws: r.Draws, BWins: r.AWins}, true
	}
	return HeadToHead{}, false
}

var headToHead = map[[2]string]HeadToHead{
	{"ARG", "BRA"}: {Played: 111, AWins: 40, Draws: 26, BWins: 45},
	{"ARG", "FRA"}: {Played: 14, AWins: 6, Draws: 3, BWins: 5},
	{"ARG", "GER"}: {Played: 25, AWins: 7, Draws: 8, BWins: 10},
	{"ARG", "ENG"}: {Played: 16, AWins: 7, Draws: 3, BWins: 6},
	{"ARG", "URU"}: {Played: 197, AWins: 89, Draws: 44, BWins: 64},
	{"BRA", "GER"}: {Played: 25, AWins: 13, Draws: 5, BWins: 7},
	{"BRA", "FRA"}: {Played: 15, AWins: 5, Draws: 3, BWins: 7},
	{"BRA", "ENG"}: {Played: 27, AWins: 12, Draws: 6, BWins: 9},
	{"BRA", "ESP"}: {Played: 11, AWins: 3, Draws: 4, BWins: 4},
	{"BRA", "NED"}: {Played: 13, AWins: 5, Draws: 3, BWins: 5},
	{"ENG", "GER"}: {Played: 37, AWins: 13, Draws: 9, BWins: 15},
	{"ENG", "FRA"}: {Played: 33, AWins: 17, Draws: 7, BWins: 9},
	{"ENG", "ESP"}: {Played: 27, AWins: 7, Draws: 8, BWins: 12},
	{"ENG", "CRO"}: {Played: 11, AWins: 5, Draws: 3, BWins: 3},
	{"FRA", "GER"}: {Played: 34, AWins: 11, Draws: 8, BWins: 15},
	{"FRA", "ESP"}: {Played: 36, AWins: 12, Draws: 8, BWins: 16},
	{"FRA", "POR"}: {Played: 28, AWins: 10, Draws: 8, BWins: 10},
	{"FRA", "BEL"}: {Played: 75, AWins: 30, Draws: 19, BWins: 26},
	{"GER", "NED"}: {Played: 46, AWins: 16, Draws: 12, BWins: 18},
	{"GER", "ESP"}: {Played: 26, AWins: 9, Draws: 7, BWins: 10},
	{"GER", "ITA"}: {Played: 37, AWins: 9, Draws: 12, BWins: 16},
	{"ESP", "POR"}: {Played: 41, AWins: 16, Draws: 11, BWins: 14},
	{"ESP", "NED"}: {Played: 16, AWins: 7, Draws: 3, BWins: 6},
	{"ESP", "ITA"}: {Played: 39, AWins: 12, Draws: 14, BWins: 13},
	{"NED", "BEL"}: {Played: 128, AWins: 56, Draws: 24, BWins: 48},
	{"POR", "NED"}: {Played: 14, AWins: 5, Draws: 3, BWins: 6},
	{"MEX", "USA"}: {Played: 77, AWins: 36, Draws: 15, BWins: 26},
	{"KOR", "JPN"}: {Played: 85, AWins: 29, Draws: 23, BWins: 33},
	{"URU", "PAR"}: {Played: 98, AWins: 42, Draws: 22, BWins: 34},
	{"COL", "BRA"}: {Played: 37, AWins: 5, Draws: 10, BWins: 22},
	{"ENG", "SCO"}: {Played: 115, AWins: 48, Draws: 25, BWins: 42},
	{"NOR", "FRA"}: {Played: 17, AWins: 3, Draws: 5, BWins: 9},
}
