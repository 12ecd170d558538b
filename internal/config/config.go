package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// BlackjackConfig правила стола
type BlackjackConfig interface {
	MinBet() int
	// MaxBet 0 - без ограничения сверху (ограничивает только баланс)
	MaxBet() int
	LedgerTimeout() time.Duration
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
}
