/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "testing"

func TestBuildStandings(t *testing.T) {
	players := roster("A", "B", "C", "D")
	record(players[0], 1, 1, 1, "C", "D")
	record(players[1], 2, 2, 0, "D", "C")
	record(players[2], 1, 1, 1, "A", "B")
	record(players[3], 0, 0, 2, "B", "A")

	standings := BuildStandings(players, 2)
	names := make([]string, 0, len(standings))
	for idx, s := range standings {
		names = append(names, s.Name)
		if s.Rank != idx+1 {
			t.Errorf("%v rank = %v; want %v", s.Name, s.Rank, idx+1)
		}
	}
	// A and C are level on points; C's opponents have done better
	want := []string{"B", "C", "A", "D"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v; want %v", names, want)
		}
	}

	c := standings[1]
	if c.OMW != 0.75 || c.Rating != RatingExtreme {
		t.Errorf("C OMW = %v %v; want 0.75 EXTREME", c.OMW, c.Rating)
	}
	if !c.OMWApplicable() {
		t.Errorf("OMW should be applicable after round 2")
	}

	// standings are snapshots
	standings[0].Points = 99
	standings[0].Opponents[0] = "Z"
	if players[1].Points != 2 || players[1].Opponents[0] != "D" {
		t.Errorf("BuildStandings aliases the roster: %+v", players[1])
	}
}

func TestBuildStandingsEarlyRounds(t *testing.T) {
	players := roster("A", "B")
	record(players[0], 0, 0, 1, "B")
	record(players[1], 1, 1, 0, "A")

	for _, round := range []int{0, 1} {
		standings := BuildStandings(players, round)
		if len(standings) != 2 || standings[0].Name != "B" {
			t.Fatalf("round %v: standings = %+v", round, standings)
		}
		if standings[0].OMWApplicable() {
			t.Errorf("round %v: OMW should be hidden", round)
		}
	}
	if BuildStandings(players, 0)[1].OMW != 0 {
		t.Errorf("OMW before round 1 should be 0")
	}
	// still computed after round 1 even though it is not shown
	if BuildStandings(players, 1)[1].OMW != 1 {
		t.Errorf("A's OMW after round 1 should be 1")
	}
}
