/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/swiss-tdbot/internal/archive"
	"github.com/mikeb26/swiss-tdbot/swiss"
)

var errQuit = errors.New("quit")

// console drives one tournament from line oriented commands.
type console struct {
	tourney *swiss.Tournament
	out     io.Writer
	// manual seeds round 1 when the session is started with "next"
	manual [][2]string

	bucket string
	gzip   bool
	// now is replaced in tests
	now func() time.Time
}

type consoleCmd func(c *console, ctx context.Context, args []string) error

var consoleCommands = map[string]consoleCmd{
	"next":      (*console).next,
	"manual":    (*console).manualPairings,
	"result":    (*console).result,
	"pending":   (*console).pending,
	"confirm":   (*console).confirm,
	"pairings":  (*console).pairings,
	"standings": (*console).standings,
	"results":   (*console).results,
	"export":    (*console).export,
	"help":      (*console).help,
	"quit":      (*console).quit,
}

func newConsole(tourney *swiss.Tournament, out io.Writer) *console {
	return &console{
		tourney: tourney,
		out:     out,
		now:     time.Now,
	}
}

// run reads commands from in until EOF or quit. Command errors are reported
// and the session continues.
func (c *console) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(c.out, "%v players, %v rounds. Type \"help\" for commands.\n",
		len(c.tourney.Players()), c.tourney.TotalRounds())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		err := c.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *console) exec(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, ok := consoleCommands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}

	return cmd(c, ctx, args[1:])
}

func (c *console) next(ctx context.Context, args []string) error {
	var round *swiss.Round
	var err error
	if c.tourney.CurrentRound() == 0 && len(c.manual) > 0 {
		round, err = c.tourney.StartWithManualPairings(c.manual)
	} else {
		round, err = c.tourney.StartRound()
	}
	if errors.Is(err, swiss.ErrTournamentComplete) {
		fmt.Fprintf(c.out, "All %v rounds have been played.\n",
			c.tourney.TotalRounds())
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, swiss.BuildPairingsOutput(round))

	return nil
}

// manualPairings takes boards as A:B,C:D.
func (c *console) manualPairings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: manual A:B[,C:D...]")
	}
	var pairs [][2]string
	for _, board := range strings.Split(strings.Join(args, " "), ",") {
		names := strings.Split(board, ":")
		if len(names) != 2 {
			return fmt.Errorf("malformed board %q", board)
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(names[0]),
			strings.TrimSpace(names[1])})
	}

	round, err := c.tourney.StartWithManualPairings(pairs)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, swiss.BuildPairingsOutput(round))

	return nil
}

func (c *console) result(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: result BOARD 1|2|double")
	}
	board, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid board %q", args[0])
	}
	round := c.tourney.CurrentPairings()
	if round == nil {
		return swiss.ErrNoActiveRound
	}
	if board < 1 || board > len(round.Pairings) {
		return fmt.Errorf("%w: board %v does not exist", swiss.ErrInvalidResult,
			board)
	}

	pairing := round.Pairings[board-1]
	var outcome swiss.Outcome
	switch strings.ToLower(args[1]) {
	case "1":
		outcome = swiss.Win(pairing[0].Name)
	case "2":
		outcome = swiss.Win(pairing[1].Name)
	case "double", "double_loss":
		outcome = swiss.DoubleLoss()
	default:
		return fmt.Errorf("invalid result %q", args[1])
	}
	if err := c.tourney.RecordResult(board, outcome); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Board %v: %v vs. %v recorded as %v\n", board,
		pairing[0].Name, pairing[1].Name, outcome)

	return nil
}

func (c *console) pending(ctx context.Context, args []string) error {
	boards := c.tourney.PendingBoards()
	if len(boards) == 0 {
		fmt.Fprintln(c.out, "No boards pending")
		return nil
	}
	fmt.Fprintf(c.out, "Boards pending: %v\n", boards)

	return nil
}

func (c *console) confirm(ctx context.Context, args []string) error {
	if err := c.tourney.ConfirmResults(); err != nil {
		return err
	}
	fmt.Fprint(c.out, c.tourney.StandingsOutput())
	if c.tourney.IsComplete() {
		fmt.Fprintln(c.out, "Tournament complete. Use \"export\" to save the report.")
	}

	return nil
}

func (c *console) pairings(ctx context.Context, args []string) error {
	fmt.Fprint(c.out, swiss.BuildPairingsOutput(c.tourney.CurrentPairings()))
	return nil
}

func (c *console) standings(ctx context.Context, args []string) error {
	fmt.Fprint(c.out, c.tourney.StandingsOutput())
	return nil
}

func (c *console) results(ctx context.Context, args []string) error {
	results := c.tourney.Results()
	if len(results) == 0 {
		fmt.Fprintln(c.out, "No results recorded")
		return nil
	}
	fmt.Fprint(c.out, swiss.BuildResultsOutput(results))

	return nil
}

// export writes the report to the given path, or a timestamped file in the
// working directory, and archives it when a bucket is configured.
func (c *console) export(ctx context.Context, args []string) error {
	rep := swiss.NewReport(c.tourney.Players(), c.tourney.Results())
	name := swiss.ReportFilename(c.now())
	path := name
	if len(args) > 0 {
		path = args[0]
	}

	if err := writeReport(path, rep); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Report written to %v\n", path)

	if c.bucket != "" {
		if err := archive.Report(ctx, c.bucket, c.gzip, name, rep); err != nil {
			return fmt.Errorf("unable to archive report: %w", err)
		}
		fmt.Fprintf(c.out, "Report archived to s3://%v as %v\n", c.bucket, name)
	}

	return nil
}

func (c *console) help(ctx context.Context, args []string) error {
	fmt.Fprint(c.out, helpText)
	return nil
}

func (c *console) quit(ctx context.Context, args []string) error {
	return errQuit
}
