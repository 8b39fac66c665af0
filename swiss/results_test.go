/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyResults(t *testing.T) {
	players := roster("A", "B", "C", "D", "E")
	results := []MatchResult{
		{Round: 1, Player1: "A", Player2: "B", Outcome: Win("B")},
		{Round: 1, Player1: "C", Player2: "D", Outcome: DoubleLoss()},
		{Round: 1, Player1: "E", Player2: ByeOpponent, Outcome: Bye()},
	}
	if err := ApplyResults(players, results); err != nil {
		t.Fatalf("ApplyResults returned error: %v", err)
	}

	want := []*Player{
		{Name: "A", Losses: 1, Opponents: []string{"B"}},
		{Name: "B", Points: 1, Wins: 1, Opponents: []string{"A"}},
		{Name: "C", Losses: 1, Opponents: []string{"D"}},
		{Name: "D", Losses: 1, Opponents: []string{"C"}},
		{Name: "E", Points: 1, Wins: 1, Opponents: []string{ByeOpponent}},
	}
	if diff := cmp.Diff(want, players); diff != "" {
		t.Errorf("ApplyResults mismatch (-want +got):\n%s", diff)
	}
	if total := totalPoints(players); total != 2 {
		t.Errorf("total points = %v; want 2", total)
	}
	if a, b, ok := checkSymmetry(players); !ok {
		t.Errorf("opponents of %v and %v are not symmetric", a, b)
	}
}

func TestApplyResultsRematchListsOnce(t *testing.T) {
	players := roster("A", "B")
	for round := 1; round <= 2; round++ {
		err := ApplyResults(players, []MatchResult{
			{Round: round, Player1: "A", Player2: "B", Outcome: Win("A")},
		})
		if err != nil {
			t.Fatalf("ApplyResults returned error: %v", err)
		}
	}
	if players[0].Wins != 2 || len(players[0].Opponents) != 1 ||
		len(players[1].Opponents) != 1 {
		t.Errorf("after rematch A=%+v B=%+v", players[0], players[1])
	}
}

func TestApplyResultsRejectsBatch(t *testing.T) {
	good := MatchResult{Round: 1, Player1: "A", Player2: "B",
		Outcome: Win("A")}
	cases := []struct {
		name string
		bad  MatchResult
		want error
	}{
		{"unknown player1", MatchResult{Round: 1, Player1: "Z", Player2: "C",
			Outcome: Win("Z")}, ErrUnknownPlayer},
		{"unknown player2", MatchResult{Round: 1, Player1: "C", Player2: "Z",
			Outcome: DoubleLoss()}, ErrUnknownPlayer},
		{"unknown bye", MatchResult{Round: 1, Player1: "Z",
			Player2: ByeOpponent, Outcome: Bye()}, ErrUnknownPlayer},
		{"self", MatchResult{Round: 1, Player1: "C", Player2: "C",
			Outcome: Win("C")}, ErrInvalidResult},
		{"outside winner", MatchResult{Round: 1, Player1: "C", Player2: "D",
			Outcome: Win("A")}, ErrInvalidResult},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			players := roster("A", "B", "C", "D")
			before := make([]*Player, 0, len(players))
			for _, p := range players {
				before = append(before, p.Clone())
			}

			err := ApplyResults(players, []MatchResult{good, c.bad})
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v; want %v", err, c.want)
			}
			if diff := cmp.Diff(before, players); diff != "" {
				t.Errorf("roster modified by a rejected batch:\n%s", diff)
			}
		})
	}
}
