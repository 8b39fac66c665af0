/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// ApplyResults folds one round of results into the roster in place. The whole
// batch is checked first; if any result is invalid nothing is modified.
// Applying the same batch twice double counts wins and losses, so callers
// must apply each round exactly once.
func ApplyResults(players []*Player, results []MatchResult) error {
	idx := indexPlayers(players)
	for _, r := range results {
		if err := validateResult(idx, r); err != nil {
			return err
		}
	}

	for _, r := range results {
		p1 := idx[r.Player1]
		if r.Outcome.Kind == OutcomeBye {
			AwardBye(p1, r.Round)
			continue
		}
		p2 := idx[r.Player2]

		switch r.Outcome.Kind {
		case OutcomeDoubleLoss:
			p1.Losses++
			p2.Losses++
		case OutcomeWin:
			winner, loser := p1, p2
			if r.Outcome.Winner == p2.Name {
				winner, loser = p2, p1
			}
			winner.Wins++
			winner.Points++
			loser.Losses++
		}

		p1.addOpponent(p2.Name)
		p2.addOpponent(p1.Name)
	}

	return nil
}

func validateResult(idx map[string]*Player, r MatchResult) error {
	if _, ok := idx[r.Player1]; !ok {
		return fmt.Errorf("%w: %q (round %v)", ErrUnknownPlayer, r.Player1,
			r.Round)
	}
	if r.Outcome.Kind == OutcomeBye {
		return nil
	}
	if _, ok := idx[r.Player2]; !ok {
		return fmt.Errorf("%w: %q (round %v)", ErrUnknownPlayer, r.Player2,
			r.Round)
	}
	if r.Player1 == r.Player2 {
		return fmt.Errorf("%w: %v cannot play themselves", ErrInvalidResult,
			r.Player1)
	}

	switch r.Outcome.Kind {
	case OutcomeDoubleLoss:
		return nil
	case OutcomeWin:
		if r.Outcome.Winner != r.Player1 && r.Outcome.Winner != r.Player2 {
			return fmt.Errorf("%w: winner %q did not play in %v vs %v",
				ErrInvalidResult, r.Outcome.Winner, r.Player1, r.Player2)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown outcome kind %v", ErrInvalidResult,
			r.Outcome.Kind)
	}
}
