/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// roster builds fresh players for the given names.
func roster(names ...string) []*Player {
	players := make([]*Player, 0, len(names))
	for _, name := range names {
		players = append(players, NewPlayer(name))
	}

	return players
}

// record sets a player's running totals directly.
func record(p *Player, points float64, wins, losses int,
	opponents ...string) *Player {

	p.Points = points
	p.Wins = wins
	p.Losses = losses
	p.Opponents = append([]string{}, opponents...)

	return p
}

func totalPoints(players []*Player) float64 {
	total := 0.0
	for _, p := range players {
		total += p.Points
	}

	return total
}

// checkSymmetry reports the first pair of players whose opponent lists
// disagree, if any.
func checkSymmetry(players []*Player) (string, string, bool) {
	idx := indexPlayers(players)
	for _, p := range players {
		for _, opp := range p.Opponents {
			if opp == p.Name {
				return p.Name, opp, false
			}
			other, ok := idx[opp]
			if !ok {
				continue
			}
			if !other.HasFaced(p.Name) {
				return p.Name, opp, false
			}
		}
	}

	return "", "", true
}
