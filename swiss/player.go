/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// ByeOpponent is recorded in a player's opponent list once they have
// received a bye.
const ByeOpponent = "bye"

// Player is a single participant's running record within a tournament.
type Player struct {
	Name      string   `json:"name"`
	Points    float64  `json:"points"`
	Wins      int      `json:"wins"`
	Losses    int      `json:"losses"`
	Ties      int      `json:"ties"`
	Opponents []string `json:"opponents"`
}

// Pairing is one board: two players facing each other in a round.
type Pairing [2]*Player

func NewPlayer(name string) *Player {
	return &Player{Name: name, Opponents: []string{}}
}

// HasFaced reports whether name already appears in p's opponent list.
func (p *Player) HasFaced(name string) bool {
	for _, opp := range p.Opponents {
		if opp == name {
			return true
		}
	}

	return false
}

func (p *Player) HasHadBye() bool {
	return p.HasFaced(ByeOpponent)
}

func (p *Player) addOpponent(name string) {
	if name == p.Name || p.HasFaced(name) {
		return
	}
	p.Opponents = append(p.Opponents, name)
}

// Clone returns a deep copy of p.
func (p *Player) Clone() *Player {
	c := *p
	c.Opponents = append([]string{}, p.Opponents...)

	return &c
}

// Record renders the win-loss-tie record, e.g. "3-1-0".
func (p *Player) Record() string {
	return fmt.Sprintf("%d-%d-%d", p.Wins, p.Losses, p.Ties)
}

// Names returns the names of both players on the board.
func (pr Pairing) Names() [2]string {
	return [2]string{pr[0].Name, pr[1].Name}
}

// Has reports whether the named player sits on this board.
func (pr Pairing) Has(name string) bool {
	return pr[0].Name == name || pr[1].Name == name
}

func indexPlayers(players []*Player) map[string]*Player {
	idx := make(map[string]*Player, len(players))
	for _, p := range players {
		idx[p.Name] = p
	}

	return idx
}
