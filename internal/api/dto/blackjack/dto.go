package blackjack

import "time"

type BetRequest struct {
	Amount int `json:"amount"` // Размер ставки (положительное целое)
}

type Card struct {
	Rank   string `json:"rank,omitempty"` // Пусто, если карта закрыта
	Suit   string `json:"suit,omitempty"`
	FaceUp bool   `json:"face_up"`
}

type Wager struct {
	Amount  int    `json:"amount"`
	Outcome string `json:"outcome"` // pending, won, lost, pushed
}

type Controls struct {
	Bet   bool `json:"bet"`
	Hit   bool `json:"hit"`
	Stand bool `json:"stand"`
	Reset bool `json:"reset"`
}

type Settlement struct {
	Outcome     string `json:"outcome"`
	Amount      int    `json:"amount"`
	Payout      int    `json:"payout"`
	Profit      int    `json:"profit"`
	RecordID    string `json:"record_id,omitempty"`
	LedgerError string `json:"ledger_error,omitempty"` // Журнал не записан, на баланс не влияет
}

type RoundResponse struct {
	RoundID     string      `json:"round_id"`
	State       string      `json:"state"`
	PlayerCards []Card      `json:"player_cards"`
	DealerCards []Card      `json:"dealer_cards"`
	PlayerScore int         `json:"player_score"`
	PlayerSoft  bool        `json:"player_soft"` // Туз в сумме считается за 11
	DealerScore int         `json:"dealer_score"` // Только по открытым картам
	Wager       *Wager      `json:"wager,omitempty"`
	Controls    Controls    `json:"controls"`
	Balance     *int        `json:"balance,omitempty"` // Нет, если сервис баланса не ответил
	Settlement  *Settlement `json:"settlement,omitempty"`
	Error       string      `json:"error,omitempty"` // Ошибка, не отменившая действие
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type BetRecord struct {
	ID          string    `json:"id"`
	RoundID     string    `json:"round_id"`
	Amount      int       `json:"amount"`
	Outcome     string    `json:"outcome"`
	Profit      int       `json:"profit"`
	PlayerScore int       `json:"player_score"`
	DealerScore int       `json:"dealer_score"`
	CreatedAt   time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Bets []BetRecord `json:"bets"`
}
