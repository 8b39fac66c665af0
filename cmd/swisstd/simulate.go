/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/mikeb26/swiss-tdbot/swiss"
)

// randomOutcome picks a result for board: usually a decisive game, with the
// occasional double loss.
func randomOutcome(rng *rand.Rand, board swiss.Pairing) swiss.Outcome {
	switch n := rng.Intn(10); {
	case n == 0:
		return swiss.DoubleLoss()
	case n < 5:
		return swiss.Win(board[0].Name)
	default:
		return swiss.Win(board[1].Name)
	}
}

// simulate plays every remaining round of tourney with random results,
// printing each round's pairings and the final standings to out. manual, if
// set, seeds round 1.
func simulate(tourney *swiss.Tournament, manual [][2]string, rng *rand.Rand,
	out io.Writer) error {

	for !tourney.IsComplete() {
		var round *swiss.Round
		var err error
		if tourney.CurrentRound() == 0 && len(manual) > 0 {
			round, err = tourney.StartWithManualPairings(manual)
		} else {
			round, err = tourney.StartRound()
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v\n", swiss.BuildPairingsOutput(round))

		for idx, board := range round.Pairings {
			err := tourney.RecordResult(idx+1, randomOutcome(rng, board))
			if err != nil {
				return err
			}
		}
		if err := tourney.ConfirmResults(); err != nil {
			return err
		}
	}

	fmt.Fprint(out, swiss.BuildStandingsOutput(tourney.Standings(),
		tourney.CurrentRound()))
	return nil
}
