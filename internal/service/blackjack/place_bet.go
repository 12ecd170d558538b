package blackjack

import (
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/repository"
	"blackjack_backend/internal/service"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PlaceBet принимает ставку: списывает ее с баланса и раздает начальные карты.
// Если списание не удалось, раунд остается в Betting и карты не раздаются
func (s *serv) PlaceBet(ctx context.Context, amount int) (*model.RoundResult, error) {
	playerID, release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	// Валидация ставки
	if amount <= 0 {
		return nil, blackjack.ErrInvalidBet
	}
	if amount < s.cfg.MinBet() || (s.cfg.MaxBet() > 0 && amount > s.cfg.MaxBet()) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", service.ErrBetOutOfLimits, amount, s.cfg.MinBet(), s.cfg.MaxBet())
	}

	// Новую ставку можно сделать только в Betting
	session, ok := s.roundRepo.Get(playerID)
	if ok && session.Round.State() != blackjack.Betting {
		return nil, fmt.Errorf("%w: state %s", service.ErrRoundInProgress, session.Round.State())
	}
	if !ok {
		session = &model.RoundSession{
			PlayerID: playerID,
			Round:    blackjack.NewRound(s.newDeck()),
		}
	}

	// Списание ставки. Проверка баланса и списание в одной транзакции
	var balance int
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.userRepo.GetBalance(txCtx, playerID)
		if err != nil {
			return fmt.Errorf("%w: get balance: %w", service.ErrBalanceService, err)
		}
		if amount > current {
			return service.ErrInsufficientFunds
		}

		balance, err = s.userRepo.AdjustBalance(txCtx, playerID, -amount)
		if err != nil {
			if errors.Is(err, repository.ErrNotEnoughBalance) {
				return service.ErrInsufficientFunds
			}
			return fmt.Errorf("%w: debit: %w", service.ErrBalanceService, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("bet rejected", "player", playerID, "amount", amount, "err", err)
		return nil, err
	}

	// Раздача. Пустая колода прерывает раунд, ставка возвращается
	err = session.Update(func(r *blackjack.Round) error {
		session.ID = uuid.New()
		session.StartedAt = s.clock.Now()
		return r.PlaceBet(amount)
	})
	if err != nil {
		if session.Round.State() == blackjack.Abandoned {
			s.roundRepo.Save(session)
			refunded, rerr := s.abandon(ctx, session)
			if rerr != nil {
				return result(session, nil, nil), errors.Join(err, rerr)
			}
			return result(session, known(refunded), nil), err
		}
		// Ставка не принята движком, деньги возвращаются
		if _, rerr := s.credit(ctx, playerID, amount); rerr != nil {
			s.logger.Error("refund failed", "player", playerID, "amount", amount, "err", rerr)
		}
		return nil, err
	}
	s.roundRepo.Save(session)

	s.logger.Debug("round started",
		"player", playerID,
		"round", session.ID,
		"amount", amount,
		"playerScore", session.Round.PlayerScore(),
		"dealerUp", session.Round.DealerScore())

	return result(session, known(balance), nil), nil
}
