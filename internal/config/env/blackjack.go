package env

import (
	"blackjack_backend/internal/config"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultLedgerTimeout = 3 * time.Second

type blackjackFile struct {
	Blackjack struct {
		MinBet        int    `yaml:"min_bet"`
		MaxBet        int    `yaml:"max_bet"`
		LedgerTimeout string `yaml:"ledger_timeout"`
	} `yaml:"blackjack"`
}

type blackjackConfig struct {
	minBet        int
	maxBet        int
	ledgerTimeout time.Duration
}

// NewBlackjackConfigFromYAML читает правила стола из секции blackjack yaml-файла
func NewBlackjackConfigFromYAML(path string) (config.BlackjackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f blackjackFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return newBlackjackConfig(f.Blackjack.MinBet, f.Blackjack.MaxBet, f.Blackjack.LedgerTimeout)
}

func newBlackjackConfig(minBet, maxBet int, ledgerTimeout string) (config.BlackjackConfig, error) {
	if minBet <= 0 {
		minBet = 1
	}
	if maxBet < 0 {
		return nil, errors.New("max_bet must not be negative")
	}
	if maxBet != 0 && maxBet < minBet {
		return nil, fmt.Errorf("max_bet %d is less than min_bet %d", maxBet, minBet)
	}

	timeout := defaultLedgerTimeout
	if ledgerTimeout != "" {
		parsed, err := time.ParseDuration(ledgerTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid ledger_timeout: %w", err)
		}
		if parsed <= 0 {
			return nil, errors.New("ledger_timeout must be positive")
		}
		timeout = parsed
	}

	return &blackjackConfig{
		minBet:        minBet,
		maxBet:        maxBet,
		ledgerTimeout: timeout,
	}, nil
}

func (cfg *blackjackConfig) MinBet() int {
	return cfg.minBet
}

func (cfg *blackjackConfig) MaxBet() int {
	return cfg.maxBet
}

func (cfg *blackjackConfig) LedgerTimeout() time.Duration {
	return cfg.ledgerTimeout
}
