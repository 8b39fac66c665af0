/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import "fmt"

// Rating is a qualitative band describing how strong a player's opponents
// have been.
type Rating int

const (
	RatingWeak Rating = iota
	RatingNormal
	RatingStrong
	RatingExpert
	RatingExtreme
)

func (r Rating) String() string {
	switch r {
	case RatingWeak:
		return "WEAK"
	case RatingNormal:
		return "NORMAL"
	case RatingStrong:
		return "STRONG"
	case RatingExpert:
		return "EXPERT"
	case RatingExtreme:
		return "EXTREME"
	default:
		return "?"
	}
}

// RatingFor maps an OMW value onto its band. Each threshold is an inclusive
// upper bound.
func RatingFor(omw float64) Rating {
	switch {
	case omw <= 0.4:
		return RatingWeak
	case omw <= 0.5:
		return RatingNormal
	case omw <= 0.6:
		return RatingStrong
	case omw <= 0.7:
		return RatingExpert
	default:
		return RatingExtreme
	}
}

func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	for candidate := RatingWeak; candidate <= RatingExtreme; candidate++ {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown OMW rating %q", text)
}
