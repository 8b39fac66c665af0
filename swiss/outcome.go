/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"encoding/json"
	"fmt"
)

// OutcomeKind distinguishes the ways a board can finish.
type OutcomeKind int

const (
	// OutcomeWin awards the game to the named winner.
	OutcomeWin OutcomeKind = iota
	// OutcomeDoubleLoss scores the game as a loss for both players.
	OutcomeDoubleLoss
	// OutcomeBye credits an unpaired player with a win.
	OutcomeBye
)

const doubleLossLabel = "double_loss"

// Outcome is the result of one board. Construct with Win, DoubleLoss or Bye.
type Outcome struct {
	Kind   OutcomeKind
	Winner string
}

func Win(name string) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: name}
}

func DoubleLoss() Outcome {
	return Outcome{Kind: OutcomeDoubleLoss}
}

func Bye() Outcome {
	return Outcome{Kind: OutcomeBye}
}

// String returns the exported form: the winner's name, "double_loss" or
// "bye".
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWin:
		return o.Winner
	case OutcomeDoubleLoss:
		return doubleLossLabel
	case OutcomeBye:
		return ByeOpponent
	default:
		return "?"
	}
}

// ParseOutcome is the inverse of String for a board between player1 and
// player2.
func ParseOutcome(s, player1, player2 string) (Outcome, error) {
	switch s {
	case doubleLossLabel:
		return DoubleLoss(), nil
	case ByeOpponent:
		return Bye(), nil
	case player1, player2:
		if s == "" {
			break
		}
		return Win(s), nil
	}

	return Outcome{}, fmt.Errorf("%w: %q is not a result of %v vs %v",
		ErrInvalidResult, s, player1, player2)
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// MatchResult records one finished board.
type MatchResult struct {
	Round   int     `json:"round"`
	Player1 string  `json:"player1"`
	Player2 string  `json:"player2"`
	Outcome Outcome `json:"winner"`
}

// IsBye reports whether the result records a bye rather than a game.
func (r MatchResult) IsBye() bool {
	return r.Outcome.Kind == OutcomeBye
}

// UnmarshalJSON reads the form written for an Outcome field, resolving the
// winner against the two players on the board.
func (r *MatchResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Round   int    `json:"round"`
		Player1 string `json:"player1"`
		Player2 string `json:"player2"`
		Winner  string `json:"winner"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	outcome, err := ParseOutcome(raw.Winner, raw.Player1, raw.Player2)
	if err != nil {
		return fmt.Errorf("round %v: %w", raw.Round, err)
	}

	*r = MatchResult{
		Round:   raw.Round,
		Player1: raw.Player1,
		Player2: raw.Player2,
		Outcome: outcome,
	}
	return nil
}
