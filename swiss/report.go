/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Report is the exported record of a tournament: every result in round
// order followed by the final standings.
type Report struct {
	Results   []MatchResult `json:"results"`
	Standings []Standing    `json:"standings"`
}

// NewReport ranks players through the last round present in results.
func NewReport(players []*Player, results []MatchResult) *Report {
	return &Report{
		Results:   append([]MatchResult(nil), results...),
		Standings: BuildStandings(players, finalRound(results)),
	}
}

// ReadJSON decodes a report produced by WriteJSON.
func ReadJSON(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("unable to decode report: %w", err)
	}
	through := finalRound(rep.Results)
	for idx := range rep.Standings {
		rep.Standings[idx].throughRound = through
	}

	return &rep, nil
}

func finalRound(results []MatchResult) int {
	last := 0
	for _, r := range results {
		if r.Round > last {
			last = r.Round
		}
	}

	return last
}

// WriteCSV emits the results table, a blank line, then the standings table.
func (rep *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Round", "Player1", "Player2", "Result"}); err != nil {
		return err
	}
	for _, r := range rep.Results {
		rec := []string{strconv.Itoa(r.Round), r.Player1, r.Player2,
			r.Outcome.String()}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if err := cw.Write([]string{"Final Standings"}); err != nil {
		return err
	}
	err := cw.Write([]string{"Rank", "Player", "Points", "Wins", "Losses",
		"Ties", "OMW"})
	if err != nil {
		return err
	}
	for _, s := range rep.Standings {
		rec := []string{
			strconv.Itoa(s.Rank),
			s.Name,
			strconv.FormatFloat(s.Points, 'f', -1, 64),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Ties),
			fmt.Sprintf("%.2f", s.OMW),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func (rep *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// CSV returns the CSV rendering as a string.
func (rep *Report) CSV() (string, error) {
	var sb strings.Builder
	if err := rep.WriteCSV(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// ReportFilename names an export taken at ts, e.g.
// swiss_tournament_2025-06-01T18_30_00_000Z.csv.
func ReportFilename(ts time.Time) string {
	stamp := ts.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "_", ".", "_").Replace(stamp)

	return fmt.Sprintf("swiss_tournament_%s.csv", stamp)
}
