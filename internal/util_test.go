/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestScoreToString(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{0.5, "½"},
		{2.5, "2½"},
		{1.25, "1.25"},
	}
	for _, c := range cases {
		if got := ScoreToString(c.in); got != c.want {
			t.Errorf("ScoreToString(%v) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestParseDateOrZero(t *testing.T) {
	for _, s := range []string{"", "null"} {
		ts, err := ParseDateOrZero(s)
		if err != nil {
			t.Fatalf("ParseDateOrZero(%q) returned error: %v", s, err)
		}
		if !ts.IsZero() {
			t.Errorf("ParseDateOrZero(%q) = %v; want zero time", s, ts)
		}
	}

	ts, err := ParseDateOrZero("2025-06-14")
	if err != nil {
		t.Fatalf("ParseDateOrZero returned error: %v", err)
	}
	if ts.Year() != 2025 || ts.Month() != time.June || ts.Day() != 14 {
		t.Errorf("ParseDateOrZero = %v; want 2025-06-14", ts)
	}

	if _, err := ParseDateOrZero("not a date"); err == nil {
		t.Errorf("expected an error for an unparseable date")
	}
}
