/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swiss-tdbot/internal"
	"github.com/mikeb26/swiss-tdbot/internal/archive"
	"github.com/mikeb26/swiss-tdbot/swiss"
)

type SwissSubCommand string

const (
	SwissAboutCmd     SwissSubCommand = "about"
	SwissHelpCmd      SwissSubCommand = "help"
	SwissStartCmd     SwissSubCommand = "start"
	SwissNextCmd      SwissSubCommand = "next"
	SwissResultCmd    SwissSubCommand = "result"
	SwissConfirmCmd   SwissSubCommand = "confirm"
	SwissPairingsCmd  SwissSubCommand = "pairings"
	SwissStandingsCmd SwissSubCommand = "standings"
	SwissResultsCmd   SwissSubCommand = "results"
	SwissExportCmd    SwissSubCommand = "export"
	SwissResetCmd     SwissSubCommand = "reset"
)

var swissSubCmdHdlrs = map[SwissSubCommand]CmdHandler{
	SwissAboutCmd:     swissAboutCmdHandler,
	SwissHelpCmd:      swissHelpCmdHandler,
	SwissStartCmd:     swissStartCmdHandler,
	SwissNextCmd:      swissNextCmdHandler,
	SwissResultCmd:    swissResultCmdHandler,
	SwissConfirmCmd:   swissConfirmCmdHandler,
	SwissPairingsCmd:  swissPairingsCmdHandler,
	SwissStandingsCmd: swissStandingsCmdHandler,
	SwissResultsCmd:   swissResultsCmdHandler,
	SwissExportCmd:    swissExportCmdHandler,
	SwissResetCmd:     swissResetCmdHandler,
}

// session is the bot's single tournament. Discord delivers interactions
// concurrently so every handler holds mu while it touches tourney.
type session struct {
	mu      sync.Mutex
	tourney *swiss.Tournament

	bucket string
	now    func() time.Time
	// opts are applied to every tournament started from Discord
	opts []swiss.Option
}

var current = &session{now: time.Now}

const noTournamentMsg = "No tournament is running. Use /swiss start to begin one."

func swissCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := swissHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := swissSubCmdHdlrs[SwissSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// subCommandOptions indexes the options passed to the invoked subcommand.
func subCommandOptions(
	inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {

	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return opts
	}
	for _, opt := range data.Options[0].Options {
		opts[opt.Name] = opt
	}

	return opts
}

func broadcastRequested(inter *discordgo.Interaction) bool {
	if opt, ok := subCommandOptions(inter)["broadcast"]; ok {
		return opt.BoolValue()
	}

	return false
}

// codeBlock wraps output in a code block for monospace formatting in Discord
func codeBlock(s string) string {
	return fmt.Sprintf("```\n%s```", truncateContent(s))
}

//go:embed about.txt
var aboutText string

func swissAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func swissHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(helpText)

	return resp
}

// parsePlayerList accepts names separated by commas, semicolons or newlines
// since slash command options are a single line.
func parsePlayerList(s string) ([]string, error) {
	return swiss.ParseRoster(strings.NewReplacer(",", "\n", ";", "\n").Replace(s))
}

func swissStartCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subCommandOptions(inter)
	playersOpt, ok := opts["players"]
	if !ok {
		resp.Data.Content = "Please provide the players, separated by commas."
		log.Printf("discordbot.start: %v", resp.Data.Content)
		return resp
	}
	rounds := int64(internal.DefaultRounds)
	if opt, ok := opts["rounds"]; ok {
		rounds = opt.IntValue()
	}

	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney != nil && current.tourney.CurrentRound() > 0 &&
		!current.tourney.IsComplete() {
		resp.Data.Content = fmt.Sprintf("Round %v of %v is in progress. Use /swiss reset first to discard it.",
			current.tourney.CurrentRound(), current.tourney.TotalRounds())
		return resp
	}

	names, err := parsePlayerList(playersOpt.StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Unable to start tournament: %v", err)
		log.Printf("discordbot.start: %v", resp.Data.Content)
		return resp
	}
	tourneyOpts := append([]swiss.Option(nil), current.opts...)
	if opt, ok := opts["seed"]; ok {
		tourneyOpts = append(tourneyOpts, swiss.WithSeed(opt.IntValue()))
	}
	tourney, err := swiss.NewTournament(names, int(rounds), tourneyOpts...)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Unable to start tournament: %v", err)
		log.Printf("discordbot.start: %v", resp.Data.Content)
		return resp
	}
	current.tourney = tourney

	resp.Data.Content = fmt.Sprintf("Started a %v round Swiss with %v players: %v\nUse /swiss next to pair round 1.",
		rounds, len(names), strings.Join(names, ", "))
	resp.Data.Flags = 0
	log.Printf("discordbot.start: %v players, %v rounds", len(names), rounds)

	return resp
}

func swissNextCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	round, err := current.tourney.StartRound()
	if errors.Is(err, swiss.ErrTournamentComplete) {
		resp.Data.Content = fmt.Sprintf("All %v rounds have been played. Use /swiss export for the final report.",
			current.tourney.TotalRounds())
		return resp
	}
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Unable to pair the next round: %v", err)
		log.Printf("discordbot.next: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = codeBlock(swiss.BuildPairingsOutput(round))
	resp.Data.Flags = 0

	return resp
}

func swissResultCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subCommandOptions(inter)
	boardOpt, ok := opts["board"]
	if !ok {
		resp.Data.Content = "Please provide a board number."
		return resp
	}
	outcomeOpt, ok := opts["outcome"]
	if !ok {
		resp.Data.Content = "Please provide an outcome."
		return resp
	}
	board := int(boardOpt.IntValue())

	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	round := current.tourney.CurrentPairings()
	if round == nil || current.tourney.ResultsConfirmed() {
		resp.Data.Content = "No round is waiting for results. Use /swiss next to pair one."
		return resp
	}
	if board < 1 || board > len(round.Pairings) {
		resp.Data.Content = fmt.Sprintf("Board %v does not exist; round %v has %v boards.",
			board, round.Number, len(round.Pairings))
		return resp
	}

	pairing := round.Pairings[board-1]
	var outcome swiss.Outcome
	switch outcomeOpt.StringValue() {
	case "1":
		outcome = swiss.Win(pairing[0].Name)
	case "2":
		outcome = swiss.Win(pairing[1].Name)
	case "double":
		outcome = swiss.DoubleLoss()
	default:
		resp.Data.Content = fmt.Sprintf("Unknown outcome %q; use 1, 2 or double.",
			outcomeOpt.StringValue())
		return resp
	}
	if err := current.tourney.RecordResult(board, outcome); err != nil {
		resp.Data.Content = fmt.Sprintf("Unable to record result: %v", err)
		log.Printf("discordbot.result: %v", resp.Data.Content)
		return resp
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Board %v: %v vs. %v recorded as %v.\n", board,
		pairing[0].Name, pairing[1].Name, outcome))
	if pending := current.tourney.PendingBoards(); len(pending) > 0 {
		sb.WriteString(fmt.Sprintf("Still waiting on boards %v.", pending))
	} else {
		sb.WriteString("All boards are in. Use /swiss confirm to apply them.")
	}
	resp.Data.Content = sb.String()

	return resp
}

func swissConfirmCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	if err := current.tourney.ConfirmResults(); err != nil {
		resp.Data.Content = fmt.Sprintf("Unable to confirm results: %v", err)
		log.Printf("discordbot.confirm: %v", resp.Data.Content)
		return resp
	}

	content := codeBlock(current.tourney.StandingsOutput())
	if current.tourney.IsComplete() {
		content += "\nTournament complete. Use /swiss export for the final report."
	}
	resp.Data.Content = content
	resp.Data.Flags = 0

	return resp
}

func swissPairingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	resp.Data.Content = codeBlock(swiss.BuildPairingsOutput(
		current.tourney.CurrentPairings()))
	if broadcastRequested(inter) {
		resp.Data.Flags = 0
	}

	return resp
}

func swissStandingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	resp.Data.Content = codeBlock(current.tourney.StandingsOutput())
	if broadcastRequested(inter) {
		resp.Data.Flags = 0
	}

	return resp
}

func swissResultsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	results := current.tourney.Results()
	if len(results) == 0 {
		resp.Data.Content = "No results have been recorded yet."
		return resp
	}
	resp.Data.Content = codeBlock(swiss.BuildResultsOutput(results))

	return resp
}

// swissExportCmdHandler replies with the CSV report and, when a bucket is
// configured, archives the CSV and JSON renderings.
func swissExportCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	rep := swiss.NewReport(current.tourney.Players(), current.tourney.Results())
	csvText, err := rep.CSV()
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Unable to build report: %v", err)
		log.Printf("discordbot.export: %v", resp.Data.Content)
		return resp
	}

	name := swiss.ReportFilename(current.now())
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%v**\n", name))
	if current.bucket != "" {
		err := archive.Report(ctx, current.bucket, true, name, rep)
		if err != nil {
			log.Printf("discordbot.export: failed to archive %v: %v", name, err)
			sb.WriteString("(archive failed; the report below is not saved)\n")
		} else {
			sb.WriteString(fmt.Sprintf("Archived to s3://%v\n", current.bucket))
		}
	}
	// leave room for the header lines
	sb.WriteString(fmt.Sprintf("```csv\n%s```", truncateTo(csvText, 1800)))
	resp.Data.Content = sb.String()

	return resp
}

func swissResetCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	current.mu.Lock()
	defer current.mu.Unlock()

	if current.tourney == nil {
		resp.Data.Content = noTournamentMsg
		return resp
	}
	log.Printf("discordbot.reset: discarding tournament at round %v of %v",
		current.tourney.CurrentRound(), current.tourney.TotalRounds())
	current.tourney = nil
	resp.Data.Content = "Tournament discarded."
	resp.Data.Flags = 0

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	return truncateTo(s, MsgLimit)
}

func truncateTo(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		s = fmt.Sprintf("%v...", string(runes[:limit]))
	}
	return s
}
