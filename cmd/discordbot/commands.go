/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import "github.com/bwmarrin/discordgo"

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func subCommand(name SwissSubCommand, desc string,
	opts ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        string(name),
		Description: desc,
		Options:     opts,
	}
}

// swissCommand describes /swiss and its subcommands for registration.
func swissCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        string(SwissCmd),
		Description: "Run a Swiss tournament; try /swiss help to start",
		Options: []*discordgo.ApplicationCommandOption{
			subCommand(SwissHelpCmd, "Show usage for swiss"),
			subCommand(SwissAboutCmd, "Show information about swiss-tdbot"),
			subCommand(SwissStartCmd, "Start a new tournament",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "players",
					Description: "Player names separated by commas",
					Required:    true,
				},
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "rounds",
					Description: "Number of rounds (default is 4)",
					Required:    false,
				},
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "seed",
					Description: "Seed for the round 1 shuffle",
					Required:    false,
				},
			),
			subCommand(SwissNextCmd, "Pair the next round"),
			subCommand(SwissResultCmd, "Record the result of a board",
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "board",
					Description: "Board number from /swiss pairings",
					Required:    true,
				},
				&discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "outcome",
					Description: "Who won the board",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Player 1 wins", Value: "1"},
						{Name: "Player 2 wins", Value: "2"},
						{Name: "Double loss", Value: "double"},
					},
				},
			),
			subCommand(SwissConfirmCmd, "Apply the current round's results"),
			subCommand(SwissPairingsCmd, "Show the current pairings",
				broadcastOption()),
			subCommand(SwissStandingsCmd, "Show the current standings",
				broadcastOption()),
			subCommand(SwissResultsCmd, "Show every recorded result"),
			subCommand(SwissExportCmd, "Export the tournament report"),
			subCommand(SwissResetCmd, "Discard the current tournament"),
		},
	}
}
