package blackjack

import (
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/middleware"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/service"
	"context"
	"fmt"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Round текущее состояние раунда игрока. Закрытая карта дилера остается закрытой.
// Слот действия не занимается: снимок берется под блокировкой сессии,
// поэтому опрос не мешает идущему действию
func (s *serv) Round(ctx context.Context) (*model.RoundResult, error) {
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	session, ok := s.roundRepo.Get(playerID)
	if !ok {
		return nil, service.ErrNoRound
	}

	balance := s.readBalance(ctx, playerID)

	var res *model.RoundResult
	session.View(func(*blackjack.Round) {
		res = result(session, balance, nil)
	})
	return res, nil
}

func (s *serv) Balance(ctx context.Context) (int, error) {
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, service.ErrUnauthorized
	}

	balance, err := s.userRepo.GetBalance(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrBalanceService, err)
	}
	return balance, nil
}

// History последние ставки игрока из журнала
func (s *serv) History(ctx context.Context, limit int) ([]model.BetRecord, error) {
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, service.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	records, err := s.betRepo.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrLedgerService, err)
	}
	return records, nil
}
