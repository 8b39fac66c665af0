/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swiss-tdbot/internal"
)

// credentials and registration state are supplied by the environment
const (
	botTokenEnv   = "DISCORD_BOT_TOKEN"
	botPubKeyEnv  = "DISCORD_PUBLIC_KEY"
	botAppIdEnv   = "DISCORD_APP_ID"
	swissCmdIdEnv = "DISCORD_SWISS_CMD_ID"
	cmdHashEnv    = "DISCORD_SWISS_CMD_HASH"
	bucketEnv     = "SWISS_REPORT_BUCKET"
)

var botPubKey ed25519.PublicKey
var botAppId string
var client *discordgo.Session

type TopLevelCommand string

const (
	SwissCmd TopLevelCommand = "swiss"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	SwissCmd: swissCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interation type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
	}
}

func setup() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	pubKeyBytes, err := hex.DecodeString(os.Getenv(botPubKeyEnv))
	if err != nil || len(pubKeyBytes) != ed25519.PublicKeySize {
		log.Fatalf("discordbot.init: Failed to parse public key from %v: %v",
			botPubKeyEnv, err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)
	botAppId = os.Getenv(botAppIdEnv)

	client, err = discordgo.New("Bot " + os.Getenv(botTokenEnv))
	if err != nil {
		log.Fatalf("dicordbot.init: Failed to initialize discord client: %v", err)
	}

	bucket, ok := os.LookupEnv(bucketEnv)
	if !ok {
		bucket = internal.ReportBucket
	}
	current.bucket = bucket
}

// cmdHash fingerprints a command definition so registration is only
// refreshed when it changes.
func cmdHash(cmd *discordgo.ApplicationCommand) (string, error) {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(cmdJson)

	return hex.EncodeToString(hash[:]), nil
}

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	hexString, err := cmdHash(cmd)
	if err != nil {
		log.Printf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}

	shouldUpdate := (hexString != os.Getenv(cmdHashEnv))
	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please update %v to %v",
			cmdHashEnv, hexString)
	}

	return shouldUpdate
}

func registerSlashCommands() {
	swissCmd := swissCommand()
	swissCmdId := os.Getenv(swissCmdIdEnv)

	if swissCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", swissCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v",
				swissCmd.Name, err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v); set %v to skip this step",
			cmd.Name, cmd.ID, swissCmdIdEnv)
	} else if shouldUpdateCmdRegistration(swissCmd) {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", swissCmdId,
			swissCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v",
				swissCmd.Name, err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	setup()
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
