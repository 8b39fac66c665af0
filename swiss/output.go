/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strings"

	"github.com/mikeb26/swiss-tdbot/internal"
)

// BuildPairingsOutput formats a round's boards into an aligned table.
func BuildPairingsOutput(round *Round) string {
	if round == nil {
		return "No round has been paired yet\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", round.Number))

	type row struct{ board, p1, p2 string }
	var rows []row
	for idx, p := range round.Pairings {
		rows = append(rows, row{
			board: fmt.Sprintf("%d.", idx+1),
			p1:    playerCell(p[0]),
			p2:    playerCell(p[1]),
		})
	}
	if round.Bye != nil {
		rows = append(rows, row{board: "n/a", p1: playerCell(round.Bye),
			p2: "BYE(1)"})
	}
	for _, p := range round.Unpaired {
		rows = append(rows, row{board: "n/a", p1: playerCell(p),
			p2: "UNPAIRED"})
	}

	// Compute column widths
	maxB, maxP1, maxP2 := len("Board"), len("Player 1"), len("Player 2")
	for _, r := range rows {
		if l := len(r.board); l > maxB {
			maxB = l
		}
		if l := len(r.p1); l > maxP1 {
			maxP1 = l
		}
		if l := len(r.p2); l > maxP2 {
			maxP2 = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxP1,
		"Player 1", maxP2, "Player 2"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
			maxP1, r.p1, maxP2, r.p2))
	}

	return sb.String()
}

func playerCell(p *Player) string {
	return fmt.Sprintf("%s(%v)", p.Name, internal.ScoreToString(p.Points))
}

// BuildStandingsOutput formats standings into an aligned table. The OMW
// column shows "--" until OMW is meaningful.
func BuildStandingsOutput(standings []Standing, round int) string {
	if round == 0 {
		return buildStandingsOutput(standings, "Standings before Round 1")
	}

	return buildStandingsOutput(standings,
		fmt.Sprintf("Standings after Round %v", round))
}

// StandingsOutput formats the session's standings. While a round's results
// are unconfirmed the table is labelled as taken during that round.
func (t *Tournament) StandingsOutput() string {
	if t.currentRound > 0 && !t.resultsConfirmed {
		return buildStandingsOutput(t.Standings(),
			fmt.Sprintf("Standings during Round %v", t.currentRound))
	}

	return BuildStandingsOutput(t.Standings(), t.currentRound)
}

func buildStandingsOutput(standings []Standing, title string) string {
	if len(standings) == 0 {
		return "No players\n"
	}

	var sb strings.Builder
	sb.WriteString(title + ":\n\n")

	type row struct{ rank, player, record, score, omw string }
	var rows []row
	for _, s := range standings {
		omw := "--"
		if s.OMWApplicable() {
			omw = fmt.Sprintf("%v; %.2f", s.Rating, s.OMW)
		}
		rows = append(rows, row{
			rank:   fmt.Sprintf("%v.", s.Rank),
			player: s.Name,
			record: s.Record(),
			score:  internal.ScoreToString(s.Points),
			omw:    omw,
		})
	}

	// Compute column widths
	maxP, maxN, maxR, maxS, maxO := len("Place"), len("Name"), len("W-L-T"),
		len("Score"), len("OMW")
	for _, r := range rows {
		if l := len(r.rank); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.record); l > maxR {
			maxR = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
		if l := len(r.omw); l > maxO {
			maxO = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s\n", maxP,
		"Place", maxN, "Name", maxR, "W-L-T", maxS, "Score", maxO, "OMW"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s\n", maxP,
			r.rank, maxN, r.player, maxR, r.record, maxS, r.score, maxO,
			r.omw))
	}

	return sb.String()
}

// BuildResultsOutput lists recorded results, one line per board.
func BuildResultsOutput(results []MatchResult) string {
	var sb strings.Builder
	lastRound := 0
	for _, r := range results {
		if r.Round != lastRound {
			if lastRound != 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("Round %v Results:\n", r.Round))
			lastRound = r.Round
		}
		switch r.Outcome.Kind {
		case OutcomeBye:
			sb.WriteString(fmt.Sprintf("  %s: BYE(1)\n", r.Player1))
		case OutcomeDoubleLoss:
			sb.WriteString(fmt.Sprintf("  %s vs. %s: double loss\n",
				r.Player1, r.Player2))
		default:
			sb.WriteString(fmt.Sprintf("  %s vs. %s: %s wins\n", r.Player1,
				r.Player2, r.Outcome.Winner))
		}
	}

	return sb.String()
}
