/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strings"
)

// ParseRoster splits newline-delimited player names, trimming whitespace and
// ignoring blank lines, and validates the result.
func ParseRoster(text string) ([]string, error) {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := ValidateRoster(names); err != nil {
		return nil, err
	}

	return names, nil
}

// ValidateRoster rejects rosters with fewer than 2 players, repeated names or
// a player named after one of the exported result labels.
func ValidateRoster(names []string) error {
	if len(names) < 2 {
		return fmt.Errorf("%w: got %v", ErrTooFewPlayers, len(names))
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" || name == ByeOpponent || name == doubleLossLabel {
			return fmt.Errorf("%w: %q", ErrReservedName, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}
