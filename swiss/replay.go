/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"sort"
)

// Replay rebuilds a roster from scratch by applying a recorded result log
// round by round, and returns the final standings along with the rebuilt
// players. No pairing is done; the log is taken as given.
func Replay(names []string, results []MatchResult) ([]Standing, []*Player,
	error) {

	if err := ValidateRoster(names); err != nil {
		return nil, nil, err
	}

	players := make([]*Player, 0, len(names))
	for _, name := range names {
		players = append(players, NewPlayer(name))
	}

	byRound := make(map[int][]MatchResult)
	for _, r := range results {
		if r.Round <= 0 {
			return nil, nil, fmt.Errorf("%w: round %v", ErrInvalidResult,
				r.Round)
		}
		byRound[r.Round] = append(byRound[r.Round], r)
	}
	var rounds []int
	for round := range byRound {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)

	lastRound := 0
	for _, round := range rounds {
		if err := ApplyResults(players, byRound[round]); err != nil {
			return nil, nil, fmt.Errorf("replay round %v: %w", round, err)
		}
		lastRound = round
	}

	return BuildStandings(players, lastRound), players, nil
}
