/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package config loads a tournament setup file.
//
//	name: Thursday Night Swiss
//	date: 2026-03-05
//	rounds: 4
//	seed: 42
//	noOpponent: rematch
//	players: [Alice, Bob, Carol, Dave, Erin]
//	manualPairings:
//	  - [Alice, Bob]
//	results:
//	  - {round: 1, player1: Alice, player2: Bob, winner: Alice}
//	report:
//	  bucket: my-reports-bucket
//	  gzip: true
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mikeb26/swiss-tdbot/internal"
	"github.com/mikeb26/swiss-tdbot/swiss"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Name           string         `yaml:"name"`
	Date           string         `yaml:"date"`
	Rounds         int            `yaml:"rounds" validate:"gte=0"`
	Seed           int64          `yaml:"seed"`
	NoOpponent     string         `yaml:"noOpponent" validate:"omitempty,oneof=drop fail rematch"`
	Players        []string       `yaml:"players" validate:"required,min=2,unique,dive,required,ne=bye,ne=double_loss"`
	ManualPairings [][]string     `yaml:"manualPairings" validate:"dive,len=2,dive,required"`
	Results        []ResultConfig `yaml:"results" validate:"dive"`
	Report         ReportConfig   `yaml:"report"`
}

type ResultConfig struct {
	Round   int    `yaml:"round" validate:"gt=0"`
	Player1 string `yaml:"player1" validate:"required"`
	Player2 string `yaml:"player2" validate:"required"`
	Winner  string `yaml:"winner" validate:"required"`
}

type ReportConfig struct {
	Bucket string `yaml:"bucket"`
	Gzip   bool   `yaml:"gzip"`
}

// Load reads and validates the setup file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config.load %v: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a setup document, fills defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse setup: %w", err)
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = internal.DefaultRounds
	}
	if cfg.NoOpponent == "" {
		cfg.NoOpponent = swiss.AllowRematch.String()
	}

	if err := validate.Struct(&cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid setup: %v failed %q", verrs[0].Namespace(),
				verrs[0].Tag())
		}
		return nil, fmt.Errorf("invalid setup: %w", err)
	}
	if err := swiss.ValidateRoster(cfg.Players); err != nil {
		return nil, err
	}
	if _, err := cfg.EventDate(); err != nil {
		return nil, fmt.Errorf("invalid setup date %q: %w", cfg.Date, err)
	}

	return &cfg, nil
}

// EventDate parses Date in any common layout; zero when unset.
func (cfg *Config) EventDate() (time.Time, error) {
	return internal.ParseDateOrZero(cfg.Date)
}

// Options translates the setup into tournament options. A zero seed keeps
// the clock-seeded shuffle.
func (cfg *Config) Options() ([]swiss.Option, error) {
	np, err := swiss.ParseNoOpponentPolicy(cfg.NoOpponent)
	if err != nil {
		return nil, err
	}
	opts := []swiss.Option{swiss.WithNoOpponentPolicy(np)}
	if cfg.Seed != 0 {
		opts = append(opts, swiss.WithSeed(cfg.Seed))
	}

	return opts, nil
}

// NewTournament starts a session from the setup.
func (cfg *Config) NewTournament() (*swiss.Tournament, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return swiss.NewTournament(cfg.Players, cfg.Rounds, opts...)
}

// Pairs returns the manual round 1 pairings.
func (cfg *Config) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(cfg.ManualPairings))
	for _, mp := range cfg.ManualPairings {
		pairs = append(pairs, [2]string{mp[0], mp[1]})
	}

	return pairs
}

// MatchResults converts the recorded results into engine results.
func (cfg *Config) MatchResults() ([]swiss.MatchResult, error) {
	results := make([]swiss.MatchResult, 0, len(cfg.Results))
	for _, rc := range cfg.Results {
		outcome, err := swiss.ParseOutcome(rc.Winner, rc.Player1, rc.Player2)
		if err != nil {
			return nil, fmt.Errorf("round %v: %w", rc.Round, err)
		}
		results = append(results, swiss.MatchResult{
			Round:   rc.Round,
			Player1: rc.Player1,
			Player2: rc.Player2,
			Outcome: outcome,
		})
	}

	return results, nil
}
