/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// OMW computes the Opponents' Match-Win rate for player: the mean win rate of
// everyone in player.Opponents, where byes and unknown names count as 0.
// It returns 0 before any round has completed.
func OMW(player *Player, allPlayers []*Player, throughRound int) float64 {
	return omwWithIndex(player, indexPlayers(allPlayers), throughRound)
}

func omwWithIndex(player *Player, idx map[string]*Player,
	throughRound int) float64 {

	if len(player.Opponents) == 0 || throughRound == 0 {
		return 0.0
	}

	total := 0.0
	for _, name := range player.Opponents {
		opp, ok := idx[name]
		if !ok {
			// bye or a player no longer on the roster
			continue
		}
		total += winRate(opp)
	}

	return total / float64(len(player.Opponents))
}

func winRate(p *Player) float64 {
	played := p.Wins + p.Losses
	if played == 0 {
		return 0.0
	}

	return float64(p.Wins) / float64(played)
}

// omwTable evaluates OMW for every player against the same snapshot so a
// sort comparator never recomputes it.
func omwTable(players []*Player, throughRound int) map[string]float64 {
	idx := indexPlayers(players)
	table := make(map[string]float64, len(players))
	for _, p := range players {
		table[p.Name] = omwWithIndex(p, idx, throughRound)
	}

	return table
}
