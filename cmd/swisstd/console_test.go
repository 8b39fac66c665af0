/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mikeb26/swiss-tdbot/swiss"
)

func newTestConsole(t *testing.T, names []string,
	rounds int) (*console, *strings.Builder) {

	t.Helper()
	tourney, err := swiss.NewTournament(names, rounds, swiss.WithShuffler(nil))
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}
	var out strings.Builder
	con := newConsole(tourney, &out)
	con.now = func() time.Time {
		return time.Date(2026, 3, 5, 21, 0, 0, 0, time.UTC)
	}

	return con, &out
}

func TestConsoleSession(t *testing.T) {
	con, out := newTestConsole(t, []string{"A", "B", "C", "D"}, 2)
	dir := t.TempDir()
	script := strings.Join([]string{
		"next",
		"result 1 1",
		"confirm",
		"pending",
		"result 2 double",
		"confirm",
		"next",
		"standings",
		"result 1 2",
		"next",
		"result 2 1",
		"confirm",
		"next",
		"export " + filepath.Join(dir, "report.csv"),
		"quit",
		"next",
	}, "\n")

	if err := con.run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"4 players, 2 rounds",
		"Round 1 Pairings:",
		"Board 1: A vs. B recorded as A",
		"error: a result is required for every board",
		"Boards pending: [2]",
		"Board 2: C vs. D recorded as double_loss",
		"Standings after Round 1:",
		"Round 2 Pairings:",
		"Standings during Round 2:",
		"error: round 2: results for the current round have not been confirmed",
		"Tournament complete.",
		"All 2 rounds have been played.",
		"Report written to",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "All 2 rounds have been played.") != 1 {
		t.Errorf("commands after quit were run:\n%s", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.csv"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "Round,Player1,Player2,Result\n1,A,B,A\n") {
		t.Errorf("unexpected report:\n%s", data)
	}
}

func TestConsoleErrors(t *testing.T) {
	con, out := newTestConsole(t, []string{"A", "B", "C"}, 1)
	ctx := context.Background()

	cases := []struct {
		line string
		want string
	}{
		{"bogus", "unknown command"},
		{"result 1 1", "no round is in progress"},
		{"manual A", "malformed board"},
		{"manual A:Zed", "unknown player"},
	}
	for _, c := range cases {
		err := con.exec(ctx, c.line)
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%q: err = %v; want %q", c.line, err, c.want)
		}
	}
	if err := con.exec(ctx, ""); err != nil {
		t.Errorf("blank line: %v", err)
	}

	if err := con.exec(ctx, "manual C:A"); err != nil {
		t.Fatalf("manual: %v", err)
	}
	if !strings.Contains(out.String(), "B(1)") {
		t.Errorf("expected B to receive the bye:\n%s", out.String())
	}
	for _, line := range []string{"result 2 1", "result 1 3", "result x 1",
		"result 1"} {
		if err := con.exec(ctx, line); err == nil {
			t.Errorf("%q: expected an error", line)
		}
	}
}

func TestConsoleManualFromSetup(t *testing.T) {
	con, out := newTestConsole(t, []string{"A", "B", "C", "D"}, 1)
	con.manual = [][2]string{{"A", "D"}}
	if err := con.exec(context.Background(), "next"); err != nil {
		t.Fatalf("next: %v", err)
	}
	round := con.tourney.CurrentPairings()
	if round.Pairings[0].Names() != [2]string{"A", "D"} ||
		round.Pairings[1].Names() != [2]string{"B", "C"} {
		t.Errorf("unexpected boards:\n%s", out.String())
	}
}

func TestSimulate(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	tourney, err := swiss.NewTournament(names, 3, swiss.WithSeed(5))
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}
	var out strings.Builder
	if err := simulate(tourney, nil, rand.New(rand.NewSource(5)), &out); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !tourney.IsComplete() || tourney.CurrentRound() != 3 {
		t.Errorf("simulate stopped at round %v", tourney.CurrentRound())
	}
	got := out.String()
	for _, want := range []string{"Round 1 Pairings:", "Round 3 Pairings:",
		"Standings after Round 3:"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// a bye every round for 7 players
	byes := 0
	for _, r := range tourney.Results() {
		if r.IsBye() {
			byes++
		}
	}
	if byes != 3 {
		t.Errorf("got %v byes; want 3", byes)
	}
}

func TestPreviewRound(t *testing.T) {
	round, err := previewRound([]string{"Top", "Second", "Third"}, 0)
	if err != nil {
		t.Fatalf("previewRound: %v", err)
	}
	if round.Bye == nil || round.Bye.Name != "Top" {
		t.Errorf("bye = %v; want Top", round.Bye)
	}
	if len(round.Pairings) != 1 ||
		round.Pairings[0].Names() != [2]string{"Second", "Third"} {
		t.Errorf("boards = %v", round.Pairings)
	}

	if _, err := previewRound([]string{"Solo"}, 0); err == nil {
		t.Errorf("expected an error for a single player section")
	}
}

func TestWriteReport(t *testing.T) {
	results := []swiss.MatchResult{
		{Round: 1, Player1: "A", Player2: "B", Outcome: swiss.Win("B")},
	}
	_, players, err := swiss.Replay([]string{"A", "B"}, results)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	rep := swiss.NewReport(players, results)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.JSON")
	if err := writeReport(jsonPath, rep); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	data, _ := os.ReadFile(jsonPath)
	if !strings.HasPrefix(string(data), "{") {
		t.Errorf("expected JSON output, got:\n%s", data)
	}

	if err := writeReport(filepath.Join(dir, "missing", "r.csv"), rep); err == nil {
		t.Errorf("expected an error for a missing directory")
	}
}
