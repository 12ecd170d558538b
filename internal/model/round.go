package model

import (
	"blackjack_backend/internal/blackjack"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GameBlackjack идентификатор игры в журнале ставок
const GameBlackjack = "BLACKJACK"

// RoundSession активный раунд игрока. У игрока одновременно не больше одной сессии.
// Раунд и поля сессии меняются только внутри Update, читатели вне слота действия
// берут снимок через View
type RoundSession struct {
	ID        uuid.UUID
	PlayerID  int
	Round     *blackjack.Round
	StartedAt time.Time

	mu sync.RWMutex
}

// Update меняет сессию под эксклюзивной блокировкой
func (s *RoundSession) Update(fn func(r *blackjack.Round) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.Round)
}

// View читает сессию под разделяемой блокировкой
func (s *RoundSession) View(fn func(r *blackjack.Round)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(s.Round)
}

// Settlement результат расчета завершенного раунда
type Settlement struct {
	Outcome     blackjack.Outcome
	Amount      int
	Payout      int // Сколько зачислено на баланс
	Profit      int // Чистый результат игрока, ничья = 0
	RecordID    string
	LedgerError string // Непустая, если запись в журнал не удалась. На баланс и раунд не влияет
}

// RoundResult то, что видит игрок после каждого действия
type RoundResult struct {
	RoundID     uuid.UUID
	State       blackjack.State
	Player      blackjack.Hand
	Dealer      blackjack.Hand
	PlayerScore int
	PlayerSoft  bool
	DealerScore int
	Wager       *blackjack.Wager
	Controls    blackjack.Controls
	Balance     *int // nil, если баланс прочитать не удалось
	Settlement  *Settlement
}
