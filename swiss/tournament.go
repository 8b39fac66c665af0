/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Round is the board assignment for one round.
type Round struct {
	Number   int
	Pairings []Pairing
	// Bye is the player credited with a bye this round, if any.
	Bye *Player
	// Unpaired lists players the engine could not seat.
	Unpaired []*Player
}

// Tournament owns the roster and round state of one Swiss event. It is not
// safe for concurrent use; callers that share one must serialize access.
type Tournament struct {
	players     []*Player
	index       map[string]*Player
	totalRounds int

	currentRound     int
	current          *Round
	pending          []*Outcome
	resultsConfirmed bool
	results          []MatchResult

	pairer Pairer
}

// Option customizes a Tournament at construction.
type Option func(t *Tournament)

// WithShuffler sets the round 1 randomization source. A nil Shuffler keeps
// round 1 in roster order.
func WithShuffler(s Shuffler) Option {
	return func(t *Tournament) {
		t.pairer.Shuffler = s
	}
}

// WithSeed seeds the round 1 shuffle for reproducible draws.
func WithSeed(seed int64) Option {
	return WithShuffler(rand.New(rand.NewSource(seed)))
}

func WithNoOpponentPolicy(np NoOpponentPolicy) Option {
	return func(t *Tournament) {
		t.pairer.NoOpponent = np
	}
}

// NewTournament validates the roster and creates a session at round 0 with
// every player zeroed. By default round 1 is shuffled from the clock and a
// player with no legal opponent is given a rematch.
func NewTournament(names []string, totalRounds int,
	opts ...Option) (*Tournament, error) {

	if err := ValidateRoster(names); err != nil {
		return nil, err
	}
	if totalRounds <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRounds, totalRounds)
	}

	t := &Tournament{
		totalRounds: totalRounds,
		pairer: Pairer{
			Shuffler:   rand.New(rand.NewSource(time.Now().UnixNano())),
			NoOpponent: AllowRematch,
		},
	}
	for _, name := range names {
		t.players = append(t.players, NewPlayer(name))
	}
	t.index = indexPlayers(t.players)
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

func (t *Tournament) CurrentRound() int {
	return t.currentRound
}

func (t *Tournament) TotalRounds() int {
	return t.totalRounds
}

// IsComplete reports whether the final round's results have been confirmed.
func (t *Tournament) IsComplete() bool {
	return t.currentRound >= t.totalRounds && t.resultsConfirmed
}

func (t *Tournament) ResultsConfirmed() bool {
	return t.resultsConfirmed
}

// Players returns copies of the current player records in roster order.
func (t *Tournament) Players() []*Player {
	ret := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		ret = append(ret, p.Clone())
	}

	return ret
}

// Player returns a copy of the named player's record.
func (t *Tournament) Player(name string) (*Player, bool) {
	p, ok := t.index[name]
	if !ok {
		return nil, false
	}

	return p.Clone(), true
}

// CurrentPairings returns the round in progress, or nil before round 1.
// Its pairings point at the session's live player records.
func (t *Tournament) CurrentPairings() *Round {
	return t.current
}

// Results returns every recorded result in round order.
func (t *Tournament) Results() []MatchResult {
	return append([]MatchResult(nil), t.results...)
}

// Standings ranks the roster through the current round.
func (t *Tournament) Standings() []Standing {
	return BuildStandings(t.players, t.currentRound)
}

func (t *Tournament) checkCanAdvance() error {
	if t.currentRound > 0 && !t.resultsConfirmed {
		return fmt.Errorf("round %v: %w", t.currentRound, ErrResultsPending)
	}
	if t.currentRound >= t.totalRounds {
		return ErrTournamentComplete
	}

	return nil
}

// StartRound pairs the next round. With an odd roster the bye is settled
// first and credited immediately; the remaining players are then paired.
func (t *Tournament) StartRound() (*Round, error) {
	if err := t.checkCanAdvance(); err != nil {
		return nil, err
	}

	next := t.currentRound + 1
	round := &Round{Number: next}
	pool := t.players
	if len(t.players)%2 == 1 {
		round.Bye = ResolveBye(t.players, next)
		pool = without(t.players, round.Bye)
	}

	pairings, unpaired, err := t.pairer.Pair(pool, next, nil)
	if err != nil {
		return nil, err
	}
	round.Pairings = pairings
	round.Unpaired = unpaired

	t.beginRound(round)
	return round, nil
}

// StartWithManualPairings opens round 1 with caller chosen boards. Players
// not named in pairs are paired in roster order and, with an odd roster, the
// last of them receives the bye. An empty pairs list pairs round 1 the
// same way StartRound does.
func (t *Tournament) StartWithManualPairings(pairs [][2]string) (*Round, error) {
	if t.currentRound != 0 {
		return nil, fmt.Errorf("%w: only round 1 may be paired manually",
			ErrManualPairings)
	}
	if len(pairs) == 0 {
		return t.StartRound()
	}

	used := make(map[string]struct{}, len(t.players))
	var manual []Pairing
	for _, names := range pairs {
		var board Pairing
		for i, name := range names {
			p, ok := t.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: %w %q", ErrManualPairings,
					ErrUnknownPlayer, name)
			}
			if _, dup := used[name]; dup {
				return nil, fmt.Errorf("%w: %q is paired more than once",
					ErrManualPairings, name)
			}
			used[name] = struct{}{}
			board[i] = p
		}
		manual = append(manual, board)
	}

	var leftover []*Player
	for _, p := range t.players {
		if _, ok := used[p.Name]; !ok {
			leftover = append(leftover, p)
		}
	}
	round := &Round{Number: 1}
	for len(leftover) >= 2 {
		manual = append(manual, Pairing{leftover[0], leftover[1]})
		leftover = leftover[2:]
	}
	if len(leftover) == 1 {
		round.Bye = leftover[0]
	}

	pairings, _, err := t.pairer.Pair(t.players, 1, manual)
	if err != nil {
		return nil, err
	}
	round.Pairings = pairings

	t.beginRound(round)
	return round, nil
}

func (t *Tournament) beginRound(round *Round) {
	t.currentRound = round.Number
	t.current = round
	t.resultsConfirmed = false
	t.pending = make([]*Outcome, len(round.Pairings))

	if round.Bye != nil {
		t.results = append(t.results, AwardBye(round.Bye, round.Number))
		log.Printf("swiss.round: round %v: %v receives a bye",
			round.Number, round.Bye.Name)
	}
	if len(round.Pairings) == 0 {
		// nothing to report; a lone bye completes the round
		t.resultsConfirmed = true
	}
}

// RecordResult stores the outcome of one board (1-based) in the round in
// progress. It may be called again to correct a board until the round is
// confirmed.
func (t *Tournament) RecordResult(board int, outcome Outcome) error {
	if t.current == nil || t.resultsConfirmed {
		return ErrNoActiveRound
	}
	if board < 1 || board > len(t.current.Pairings) {
		return fmt.Errorf("%w: board %v does not exist in round %v",
			ErrInvalidResult, board, t.currentRound)
	}

	pairing := t.current.Pairings[board-1]
	switch outcome.Kind {
	case OutcomeWin:
		if !pairing.Has(outcome.Winner) {
			return fmt.Errorf("%w: %q is not on board %v", ErrInvalidResult,
				outcome.Winner, board)
		}
	case OutcomeDoubleLoss:
	default:
		return fmt.Errorf("%w: board %v must finish with a win or a double loss",
			ErrInvalidResult, board)
	}

	o := outcome
	t.pending[board-1] = &o
	return nil
}

// PendingBoards returns the 1-based boards still missing a result.
func (t *Tournament) PendingBoards() []int {
	var boards []int
	for i, o := range t.pending {
		if o == nil {
			boards = append(boards, i+1)
		}
	}

	return boards
}

// ConfirmResults applies the round's results to the roster. Every board must
// have a result.
func (t *Tournament) ConfirmResults() error {
	if t.current == nil || t.resultsConfirmed {
		return ErrNoActiveRound
	}
	if missing := t.PendingBoards(); len(missing) > 0 {
		return fmt.Errorf("%w: boards %v", ErrResultsIncomplete, missing)
	}

	results := make([]MatchResult, 0, len(t.pending))
	for i, pairing := range t.current.Pairings {
		results = append(results, MatchResult{
			Round:   t.currentRound,
			Player1: pairing[0].Name,
			Player2: pairing[1].Name,
			Outcome: *t.pending[i],
		})
	}
	if err := ApplyResults(t.players, results); err != nil {
		return err
	}

	t.results = append(t.results, results...)
	t.resultsConfirmed = true
	if t.currentRound >= t.totalRounds {
		log.Printf("swiss.confirm: all %v rounds completed", t.totalRounds)
	}

	return nil
}

func without(players []*Player, skip *Player) []*Player {
	ret := make([]*Player, 0, len(players))
	for _, p := range players {
		if p != skip {
			ret = append(ret, p)
		}
	}

	return ret
}
