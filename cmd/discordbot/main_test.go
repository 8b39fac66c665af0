/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// signedRequest builds an interaction request signed the way Discord signs
// them.
func signedRequest(t *testing.T, priv ed25519.PrivateKey,
	body string) *http.Request {

	t.Helper()
	const timestamp = "1741208400"
	sig := ed25519.Sign(priv, []byte(timestamp+body))
	req := httptest.NewRequest(http.MethodPost, "/DiscordBot/Interaction",
		bytes.NewBufferString(body))
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", timestamp)

	return req
}

func withTestKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	old := botPubKey
	botPubKey = pub
	t.Cleanup(func() { botPubKey = old })

	return priv
}

func TestInteractionHandlerPing(t *testing.T) {
	priv := withTestKey(t)
	rec := httptest.NewRecorder()
	interactionHandler(rec, signedRequest(t, priv, `{"type":1}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %v; want 200", rec.Code)
	}
	var resp discordgo.InteractionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Type != discordgo.InteractionResponsePong {
		t.Errorf("response type = %v; want pong", resp.Type)
	}
}

func TestInteractionHandlerRejectsBadSignature(t *testing.T) {
	withTestKey(t)
	_, otherPriv, _ := ed25519.GenerateKey(nil)

	rec := httptest.NewRecorder()
	interactionHandler(rec, signedRequest(t, otherPriv, `{"type":1}`))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %v; want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/DiscordBot/Interaction",
		strings.NewReader(`{"type":1}`))
	interactionHandler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unsigned status = %v; want 401", rec.Code)
	}
}

func TestInteractionHandlerCommands(t *testing.T) {
	priv := withTestKey(t)
	resetSession(t)

	cases := []struct {
		body string
		want string
	}{
		{`{"type":2,"data":{"name":"swiss","options":[{"name":"help","type":1}]}}`,
			"/swiss start"},
		{`{"type":2,"data":{"name":"swiss","options":[{"name":"start","type":1,"options":[{"name":"players","type":3,"value":"A, B"},{"name":"rounds","type":4,"value":3}]}]}}`,
			"3 round Swiss with 2 players"},
		{`{"type":2,"data":{"name":"td"}}`, "unknown command 'td'"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		interactionHandler(rec, signedRequest(t, priv, c.body))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %v; want 200", rec.Code)
		}
		var resp discordgo.InteractionResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if resp.Data == nil || !strings.Contains(resp.Data.Content, c.want) {
			t.Errorf("response %s does not contain %q", rec.Body.String(),
				c.want)
		}
	}
}

func TestCmdHash(t *testing.T) {
	h1, err := cmdHash(swissCommand())
	if err != nil {
		t.Fatalf("cmdHash: %v", err)
	}
	h2, _ := cmdHash(swissCommand())
	if h1 != h2 || len(h1) != 64 {
		t.Errorf("cmdHash not stable: %v vs %v", h1, h2)
	}

	t.Setenv(cmdHashEnv, h1)
	if shouldUpdateCmdRegistration(swissCommand()) {
		t.Errorf("registration should be current")
	}
	t.Setenv(cmdHashEnv, "stale")
	if !shouldUpdateCmdRegistration(swissCommand()) {
		t.Errorf("registration should be refreshed")
	}
}
