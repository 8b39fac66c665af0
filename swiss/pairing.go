/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"log"
	"math"
	"sort"
)

// Shuffler randomizes round 1 seeding. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NoOpponentPolicy decides what happens to a player who has already faced
// everyone still waiting to be paired.
type NoOpponentPolicy int

const (
	// DropUnpaired leaves the player out of the round. They are logged and
	// returned in the unpaired list.
	DropUnpaired NoOpponentPolicy = iota
	// FailUnpaired aborts pairing with ErrNoLegalOpponent.
	FailUnpaired
	// AllowRematch pairs the player with the closest opponent regardless of
	// history.
	AllowRematch
)

func (np NoOpponentPolicy) String() string {
	switch np {
	case DropUnpaired:
		return "drop"
	case FailUnpaired:
		return "fail"
	case AllowRematch:
		return "rematch"
	default:
		return "?"
	}
}

// ParseNoOpponentPolicy accepts the String() forms.
func ParseNoOpponentPolicy(s string) (NoOpponentPolicy, error) {
	for _, np := range []NoOpponentPolicy{DropUnpaired, FailUnpaired,
		AllowRematch} {
		if np.String() == s {
			return np, nil
		}
	}

	return DropUnpaired, fmt.Errorf("unknown no-opponent policy %q", s)
}

// Pairer builds one round of Swiss pairings. The zero value pairs without
// shuffling and drops players with no legal opponent.
type Pairer struct {
	Shuffler   Shuffler
	NoOpponent NoOpponentPolicy
}

// Pair returns the boards for round in the order they were formed, plus any
// players left without a board. In round 1 a non-empty manual list is
// returned verbatim and is not checked.
func (pr *Pairer) Pair(players []*Player, round int,
	manual []Pairing) ([]Pairing, []*Player, error) {

	if round == 1 && len(manual) > 0 {
		return manual, nil, nil
	}

	omw := omwTable(players, round-1)
	remaining := sortByScore(players, omw, true)
	if round == 1 && pr.Shuffler != nil {
		pr.Shuffler.Shuffle(len(remaining), func(i, j int) {
			remaining[i], remaining[j] = remaining[j], remaining[i]
		})
	}

	var pairings []Pairing
	var unpaired []*Player
	for len(remaining) >= 2 {
		p1 := remaining[0]
		remaining = remaining[1:]

		oppIdx := bestOpponent(p1, remaining, omw, true)
		if oppIdx < 0 {
			switch pr.NoOpponent {
			case FailUnpaired:
				return nil, nil, fmt.Errorf("%w: %v in round %v",
					ErrNoLegalOpponent, p1.Name, round)
			case AllowRematch:
				oppIdx = bestOpponent(p1, remaining, omw, false)
				log.Printf("swiss.pair: round %v: rematching %v against %v",
					round, p1.Name, remaining[oppIdx].Name)
			default:
				log.Printf("swiss.pair: round %v: %v has faced everyone remaining; left unpaired",
					round, p1.Name)
				unpaired = append(unpaired, p1)
				continue
			}
		}

		p2 := remaining[oppIdx]
		remaining = append(remaining[:oppIdx:oppIdx], remaining[oppIdx+1:]...)
		pairings = append(pairings, Pairing{p1, p2})
	}
	unpaired = append(unpaired, remaining...)

	return pairings, unpaired, nil
}

// bestOpponent scans candidates for the smallest point difference to p1,
// then the smallest OMW difference. The first candidate wins any full tie.
// When legalOnly is set, players p1 has already faced are skipped.
func bestOpponent(p1 *Player, candidates []*Player, omw map[string]float64,
	legalOnly bool) int {

	best := -1
	minPointDiff := math.Inf(1)
	minOMWDiff := math.Inf(1)
	for i, p2 := range candidates {
		if legalOnly && p1.HasFaced(p2.Name) {
			continue
		}
		pointDiff := math.Abs(p1.Points - p2.Points)
		omwDiff := math.Abs(omw[p1.Name] - omw[p2.Name])
		if pointDiff < minPointDiff ||
			(pointDiff == minPointDiff && omwDiff < minOMWDiff) {
			best = i
			minPointDiff = pointDiff
			minOMWDiff = omwDiff
		}
	}

	return best
}

// sortByScore returns a copy of players ordered by points then OMW, highest
// first when desc is set. Equal players keep their roster order.
func sortByScore(players []*Player, omw map[string]float64,
	desc bool) []*Player {

	sorted := append([]*Player(nil), players...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Points != b.Points {
			if desc {
				return a.Points > b.Points
			}
			return a.Points < b.Points
		}
		if desc {
			return omw[a.Name] > omw[b.Name]
		}
		return omw[a.Name] < omw[b.Name]
	})

	return sorted
}
