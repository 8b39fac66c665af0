/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// ResolveBye picks who sits out an odd-sized round: the lowest ranked player
// (points, then OMW through round-1) who has not yet had a bye. Once everyone
// has had one the lowest ranked player gets another. Returns nil for an empty
// roster.
func ResolveBye(players []*Player, round int) *Player {
	if len(players) == 0 {
		return nil
	}
	sorted := sortByScore(players, omwTable(players, round-1), false)
	for _, p := range sorted {
		if !p.HasHadBye() {
			return p
		}
	}

	return sorted[0]
}

// AwardBye credits p with the bye's win and returns the result to record.
func AwardBye(p *Player, round int) MatchResult {
	p.Points += 1
	p.Wins += 1
	p.addOpponent(ByeOpponent)

	return MatchResult{
		Round:   round,
		Player1: p.Name,
		Player2: ByeOpponent,
		Outcome: Bye(),
	}
}
