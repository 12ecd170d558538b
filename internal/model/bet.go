package model

import (
	"blackjack_backend/internal/blackjack"
	"time"

	"github.com/google/uuid"
)

// BetRecord запись о рассчитанной ставке в журнале
type BetRecord struct {
	ID          uuid.UUID
	PlayerID    int
	GameID      string
	RoundID     uuid.UUID
	Amount      int
	Outcome     blackjack.Outcome
	Profit      int
	PlayerScore int
	DealerScore int
	CreatedAt   time.Time
}
