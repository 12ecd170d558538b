package service

import (
	"blackjack_backend/internal/model"
	"context"
	"errors"
)

var (
	// ErrUnauthorized в контексте нет ID игрока
	ErrUnauthorized = errors.New("user id not found in context")
	// ErrInsufficientFunds ставка больше баланса. Состояние не меняется
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBetOutOfLimits ставка вне лимитов стола
	ErrBetOutOfLimits = errors.New("bet out of table limits")
	// ErrBalanceService сбой сервиса баланса. При списании ставка не принимается,
	// при зачислении итог раунда остается, а баланс может быть устаревшим
	ErrBalanceService = errors.New("balance service error")
	// ErrLedgerService сбой записи в журнал ставок. Не влияет ни на баланс, ни на раунд
	ErrLedgerService = errors.New("bet ledger error")
	// ErrActionInProgress предыдущее действие игрока еще выполняется
	ErrActionInProgress = errors.New("previous action still in progress")
	// ErrNoRound у игрока нет активного раунда
	ErrNoRound = errors.New("no active round")
	// ErrRoundInProgress новая ставка до завершения и reset текущего раунда
	ErrRoundInProgress = errors.New("round already in progress")
)

type BlackjackService interface {
	PlaceBet(ctx context.Context, amount int) (*model.RoundResult, error)
	Hit(ctx context.Context) (*model.RoundResult, error)
	Stand(ctx context.Context) (*model.RoundResult, error)
	Reset(ctx context.Context) (*model.RoundResult, error)
	Round(ctx context.Context) (*model.RoundResult, error)
	Balance(ctx context.Context) (int, error)
	History(ctx context.Context, limit int) ([]model.BetRecord, error)
}
