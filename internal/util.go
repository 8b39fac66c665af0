/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString renders a score with a half point glyph, e.g. 2.5 -> "2½".
func ScoreToString(score float64) string {
	whole, frac := math.Modf(score)
	switch {
	case frac == 0:
		return fmt.Sprintf("%d", int(whole))
	case frac == 0.5 && whole == 0:
		return "½"
	case frac == 0.5:
		return fmt.Sprintf("%d½", int(whole))
	default:
		return fmt.Sprintf("%.2f", score)
	}
}
