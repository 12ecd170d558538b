package blackjack

import (
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/service"
	"context"
	"fmt"
)

// settle расчет завершенного раунда: зачисление выигрыша и запись в журнал ставок.
//
// Зачисление выполняется первым. Его ошибка возвращается как service.ErrBalanceService,
// но итог раунда не меняется. При проигрыше зачислять нечего, и сбой чтения баланса
// для ответа только логируется. Запись в журнал делается один раз, без повторов,
// с собственным таймаутом; ее ошибка только логируется и попадает в Settlement.LedgerError
func (s *serv) settle(ctx context.Context, session *model.RoundSession) (*model.Settlement, *int, error) {
	// Расчет не отменяется вместе с запросом
	ctx = context.WithoutCancel(ctx)

	r := session.Round
	w, _ := r.Wager()

	st := &model.Settlement{
		Outcome: w.Outcome,
		Amount:  w.Amount,
		Payout:  blackjack.Payout(w.Outcome, w.Amount),
		Profit:  blackjack.Profit(w.Outcome, w.Amount),
	}

	var (
		balance *int
		balErr  error
	)
	if st.Payout > 0 {
		credited, err := s.credit(ctx, session.PlayerID, st.Payout)
		if err != nil {
			balErr = err
			s.logger.Error("settlement balance update failed",
				"player", session.PlayerID,
				"round", session.ID,
				"outcome", st.Outcome,
				"payout", st.Payout,
				"err", err)
		} else {
			balance = known(credited)
		}
	} else {
		// Проигрыш: ставка уже списана, только читаем баланс для ответа
		balance = s.readBalance(ctx, session.PlayerID)
	}

	rec := model.BetRecord{
		PlayerID:    session.PlayerID,
		GameID:      model.GameBlackjack,
		RoundID:     session.ID,
		Amount:      w.Amount,
		Outcome:     w.Outcome,
		Profit:      st.Profit,
		PlayerScore: r.PlayerScore(),
		DealerScore: r.DealerScore(),
		CreatedAt:   s.clock.Now(),
	}

	ledgerCtx, cancel := context.WithTimeout(ctx, s.cfg.LedgerTimeout())
	defer cancel()

	recordID, err := s.betRepo.Record(ledgerCtx, rec)
	if err != nil {
		err = fmt.Errorf("%w: %w", service.ErrLedgerService, err)
		st.LedgerError = err.Error()
		s.logger.Error("bet ledger write failed",
			"player", session.PlayerID,
			"round", session.ID,
			"outcome", st.Outcome,
			"err", err)
	} else {
		st.RecordID = recordID
	}

	s.logger.Info("round settled",
		"player", session.PlayerID,
		"round", session.ID,
		"outcome", st.Outcome,
		"amount", st.Amount,
		"playerScore", rec.PlayerScore,
		"dealerScore", rec.DealerScore,
		"duration", rec.CreatedAt.Sub(session.StartedAt))

	return st, balance, balErr
}

// abandon раунд прерван пустой колодой: ставка возвращается, в журнал ничего не пишется
func (s *serv) abandon(ctx context.Context, session *model.RoundSession) (int, error) {
	ctx = context.WithoutCancel(ctx)

	w, _ := session.Round.Wager()
	s.logger.Error("round abandoned",
		"player", session.PlayerID,
		"round", session.ID,
		"amount", w.Amount,
		"err", session.Round.Err())

	balance, err := s.credit(ctx, session.PlayerID, w.Amount)
	if err != nil {
		s.logger.Error("refund failed", "player", session.PlayerID, "amount", w.Amount, "err", err)
		return 0, err
	}
	return balance, nil
}

func (s *serv) credit(ctx context.Context, playerID, amount int) (int, error) {
	balance, err := s.userRepo.AdjustBalance(ctx, playerID, amount)
	if err != nil {
		return 0, fmt.Errorf("%w: credit %d: %w", service.ErrBalanceService, amount, err)
	}
	return balance, nil
}
