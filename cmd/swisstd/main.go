/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/mikeb26/swiss-tdbot/internal"
	"github.com/mikeb26/swiss-tdbot/internal/archive"
	"github.com/mikeb26/swiss-tdbot/internal/config"
	"github.com/mikeb26/swiss-tdbot/registration"
	"github.com/mikeb26/swiss-tdbot/swiss"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"preview":  handlePreview,
	"simulate": handleSimulate,
	"play":     handlePlay,
	"replay":   handleReplay,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handlePreview(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	urls := fs.String("url", "", "Comma separated registration page URLs")
	file := fs.String("file", "", "Saved registration page")
	section := fs.String("section", "", "Section to pair")
	seed := fs.Int64("seed", 0, "Round 1 shuffle seed (0 leaves it unshuffled)")
	bucket := fs.String("cachebucket", "", "S3 bucket for the page cache")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *urls == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "Please provide --url or --file.")
		fs.Usage()
		os.Exit(1)
	}

	var entries []registration.Entry
	var err error
	if *file != "" {
		var f *os.File
		f, err = os.Open(*file)
		if err != nil {
			log.Fatalf("Error opening %v: %v", *file, err)
		}
		entries, err = registration.ParseEntries(f)
		f.Close()
	} else {
		client := internal.NewCachedHttpClient(ctx, *bucket,
			internal.RegistrationCacheMaxAge)
		entries, err = registration.FetchAll(ctx, client,
			strings.Split(*urls, ","))
	}
	if err != nil {
		log.Fatalf("Error reading registrations: %v", err)
	}

	sections := []string{*section}
	if *section == "" {
		sections = registration.Sections(entries)
	}
	fmt.Printf("Predicted Pairings:\n")
	for _, sec := range sections {
		if sec != "" {
			fmt.Printf("Section: %s\n", sec)
		}
		names := registration.Roster(entries, sec)
		round, err := previewRound(names, *seed)
		if err != nil {
			fmt.Printf("  unable to pair: %v\n\n", err)
			continue
		}
		fmt.Printf("%v\n", swiss.BuildPairingsOutput(round))
	}
}

// previewRound pairs round 1 of a throwaway session over names.
func previewRound(names []string, seed int64) (*swiss.Round, error) {
	opt := swiss.WithShuffler(nil)
	if seed != 0 {
		opt = swiss.WithSeed(seed)
	}
	tourney, err := swiss.NewTournament(names, 1, opt)
	if err != nil {
		return nil, err
	}

	return tourney.StartRound()
}

// loadSession builds a session from either a setup file or a roster file.
func loadSession(cfgPath, rosterPath string, rounds int,
	opts ...swiss.Option) (*swiss.Tournament, *config.Config, error) {

	switch {
	case cfgPath != "":
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, nil, err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return nil, nil, err
		}
		tourney, err := swiss.NewTournament(cfg.Players, cfg.Rounds,
			append(cfgOpts, opts...)...)
		return tourney, cfg, err
	case rosterPath != "":
		data, err := os.ReadFile(rosterPath)
		if err != nil {
			return nil, nil, err
		}
		names, err := swiss.ParseRoster(string(data))
		if err != nil {
			return nil, nil, fmt.Errorf("%v: %w", rosterPath, err)
		}
		tourney, err := swiss.NewTournament(names, rounds, opts...)
		return tourney, nil, err
	default:
		return nil, nil, fmt.Errorf("one of --config or --roster is required")
	}
}

func handleSimulate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Tournament setup file")
	rosterPath := fs.String("roster", "", "Newline delimited player names")
	rounds := fs.Int("rounds", internal.DefaultRounds, "Number of rounds")
	seed := fs.Int64("seed", 0, "Seed for pairings and results")
	out := fs.String("out", "", "Report output path (.csv or .json)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tourney, cfg, err := loadSession(*cfgPath, *rosterPath, *rounds,
		swiss.WithSeed(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start tournament: %v\n", err)
		fs.Usage()
		os.Exit(1)
	}

	var manual [][2]string
	if cfg != nil {
		manual = cfg.Pairs()
	}
	rng := rand.New(rand.NewSource(*seed))
	if err := simulate(tourney, manual, rng, os.Stdout); err != nil {
		log.Fatalf("Error simulating tournament: %v", err)
	}
	if *out != "" {
		rep := swiss.NewReport(tourney.Players(), tourney.Results())
		if err := writeReport(*out, rep); err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		fmt.Printf("Report written to %v\n", *out)
	}
}

func handlePlay(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Tournament setup file")
	rosterPath := fs.String("roster", "", "Newline delimited player names")
	rounds := fs.Int("rounds", internal.DefaultRounds, "Number of rounds")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	tourney, cfg, err := loadSession(*cfgPath, *rosterPath, *rounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to start tournament: %v\n", err)
		fs.Usage()
		os.Exit(1)
	}
	con := newConsole(tourney, os.Stdout)
	if cfg != nil {
		con.bucket = cfg.Report.Bucket
		con.gzip = cfg.Report.Gzip
		con.manual = cfg.Pairs()
	}
	if err := con.run(ctx, os.Stdin); err != nil {
		log.Fatalf("Error reading commands: %v", err)
	}
}

func handleReplay(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Tournament setup file")
	out := fs.String("out", "", "Report output path (.csv or .json)")
	bucket := fs.String("bucket", "", "S3 bucket to archive the report to")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --config file.")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Error loading %v: %v", *cfgPath, err)
	}
	results, err := cfg.MatchResults()
	if err != nil {
		log.Fatalf("Error reading results: %v", err)
	}
	standings, players, err := swiss.Replay(cfg.Players, results)
	if err != nil {
		log.Fatalf("Error replaying results: %v", err)
	}

	if cfg.Name != "" {
		fmt.Printf("%v\n", cfg.Name)
	}
	if date, _ := cfg.EventDate(); !date.IsZero() {
		fmt.Printf("%v\n", date.Format("Monday, January 2, 2006"))
	}
	fmt.Printf("\n%v\n", swiss.BuildResultsOutput(results))
	lastRound := 0
	for _, r := range results {
		lastRound = max(lastRound, r.Round)
	}
	fmt.Print(swiss.BuildStandingsOutput(standings, lastRound))

	rep := swiss.NewReport(players, results)
	if *out != "" {
		if err := writeReport(*out, rep); err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		fmt.Printf("Report written to %v\n", *out)
	}
	if *bucket == "" {
		*bucket = cfg.Report.Bucket
	}
	if *bucket != "" {
		name := swiss.ReportFilename(time.Now())
		if err := archive.Report(ctx, *bucket, cfg.Report.Gzip, name,
			rep); err != nil {
			log.Fatalf("Error archiving report: %v", err)
		}
		fmt.Printf("Report archived to s3://%v as %v\n", *bucket, name)
	}
}
