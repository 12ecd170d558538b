package blackjack

import (
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/service"
	"context"
	"errors"
)

// Hit добор карты. Перебор сразу завершает раунд проигрышем и запускает расчет
func (s *serv) Hit(ctx context.Context) (*model.RoundResult, error) {
	playerID, release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	session, ok := s.roundRepo.Get(playerID)
	if !ok {
		return nil, service.ErrNoRound
	}

	err = session.Update(func(r *blackjack.Round) error {
		return r.Hit()
	})
	if err != nil {
		return s.afterFailedMove(ctx, session, err)
	}

	if session.Round.State() == blackjack.Settled {
		return s.finish(ctx, session)
	}

	return result(session, s.readBalance(ctx, playerID), nil), nil
}

// Stand игрок останавливается, дилер доигрывает, раунд рассчитывается
func (s *serv) Stand(ctx context.Context) (*model.RoundResult, error) {
	playerID, release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	session, ok := s.roundRepo.Get(playerID)
	if !ok {
		return nil, service.ErrNoRound
	}

	err = session.Update(func(r *blackjack.Round) error {
		return r.Stand()
	})
	if err != nil {
		return s.afterFailedMove(ctx, session, err)
	}

	return s.finish(ctx, session)
}

func (s *serv) finish(ctx context.Context, session *model.RoundSession) (*model.RoundResult, error) {
	st, balance, err := s.settle(ctx, session)
	return result(session, balance, st), err
}

// afterFailedMove разбирает ошибку движка. Пустая колода прерывает раунд с возвратом ставки,
// остальные ошибки не меняют раунд
func (s *serv) afterFailedMove(ctx context.Context, session *model.RoundSession, err error) (*model.RoundResult, error) {
	if !errors.Is(err, blackjack.ErrDeckExhausted) {
		return nil, err
	}

	balance, rerr := s.abandon(ctx, session)
	if rerr != nil {
		return result(session, nil, nil), errors.Join(err, rerr)
	}
	return result(session, known(balance), nil), err
}

// Reset завершает рассчитанный или прерванный раунд и возвращает стол в Betting
func (s *serv) Reset(ctx context.Context) (*model.RoundResult, error) {
	playerID, release, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	session, ok := s.roundRepo.Get(playerID)
	if !ok {
		return nil, service.ErrNoRound
	}

	err = session.Update(func(r *blackjack.Round) error {
		return r.Reset()
	})
	if err != nil {
		return nil, err
	}
	s.roundRepo.Save(session)

	return result(session, s.readBalance(ctx, playerID), nil), nil
}
