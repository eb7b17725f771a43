package dataset

import "github.com/mondialsim/mondial/internal/domain/bracket"

// roundOf32 is the official Round-of-32 template. "1X" is the winner of
// group X, "2X" its runner-up, "3_..." a best-third slot listing the groups
// whose third-placed team it accepts.
var roundOf32 = []bracket.RawMatch{
	{ID: 73, SlotA: "2A", SlotB: "2B"},
	{ID: 74, SlotA: "1E", SlotB: "3_ABCDF"},
	{ID: 75, SlotA: "1F", SlotB: "2C"},
	{ID: 76, SlotA: "1C", SlotB: "2F"},
	{ID: 77, SlotA: "1I", SlotB: "3_CDFGH"},
	{ID: 78, SlotA: "2E", SlotB: "2I"},
	{ID: 79, SlotA: "1A", SlotB: "3_CEFHI"},
	{ID: 80, SlotA: "1L", SlotB: "3_EHIJK"},
	{ID: 81, SlotA: "1D", SlotB: "3_BEFIJ"},
	{ID: 82, SlotA: "1G", SlotB: "3_AEHIJ"},
	{ID: 83, SlotA: "2K", SlotB: "2L"},
	{ID: 84, SlotA: "1H", SlotB: "2J"},
	{ID: 85, SlotA: "1B", SlotB: "3_EFGIJ"},
	{ID: 86, SlotA: "1J", SlotB: "2H"},
	{ID: 87, SlotA: "1K", SlotB: "3_DEIJL"},
	{ID: 88, SlotA: "2D", SlotB: "2G"},
}

// Feed indices: each later-round match takes the winners of two
// previous-round matches by index.
var (
	roundOf16Feeds = [][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{8, 9}, {10, 11}, {12, 13}, {14, 15},
	}
	quarterfinalFeeds = [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}
	semifinalFeeds    = [][2]int{{0, 1}, {2, 3}}
)

// Template parses the official 2026 bracket template. The shipped data is
// structurally valid, so an error here means the dataset itself was edited
// into an inconsistent state.
func Template() (*bracket.Template, error) {
	return bracket.ParseTemplate(roundOf32, roundOf16Feeds, quarterfinalFeeds, semifinalFeeds)
}
