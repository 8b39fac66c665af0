/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "errors"

var (
	ErrTooFewPlayers   = errors.New("at least 2 players are required")
	ErrDuplicatePlayer = errors.New("player names must be unique")
	ErrReservedName    = errors.New("player name is reserved")
	ErrInvalidRounds   = errors.New("number of rounds must be greater than 0")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrInvalidResult   = errors.New("invalid result")
	ErrNoLegalOpponent = errors.New("no legal opponent remains")

	// ErrTournamentComplete is informational: every round has been played
	// and the session is unchanged.
	ErrTournamentComplete = errors.New("all rounds have been completed")
	ErrResultsPending     = errors.New("results for the current round have not been confirmed")
	ErrResultsIncomplete  = errors.New("a result is required for every board")
	ErrNoActiveRound      = errors.New("no round is in progress")
	ErrManualPairings     = errors.New("invalid manual pairings")
)
