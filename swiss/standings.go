/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Standing is a ranked, read-only snapshot of one player.
type Standing struct {
	Player
	Rank   int     `json:"rank"`
	OMW    float64 `json:"omwValue"`
	Rating Rating  `json:"omwRating"`

	throughRound int
}

// OMWApplicable reports whether OMW means anything yet. Before the second
// round has completed presentation layers should hide it.
func (s Standing) OMWApplicable() bool {
	return s.throughRound > 1
}

// BuildStandings ranks players by points then OMW through throughRound.
// Ranks are sequential even when players are level. players is not modified.
func BuildStandings(players []*Player, throughRound int) []Standing {
	omw := omwTable(players, throughRound)
	sorted := sortByScore(players, omw, true)

	standings := make([]Standing, 0, len(sorted))
	for idx, p := range sorted {
		standings = append(standings, Standing{
			Player:       *p.Clone(),
			Rank:         idx + 1,
			OMW:          omw[p.Name],
			Rating:       RatingFor(omw[p.Name]),
			throughRound: throughRound,
		})
	}

	return standings
}
