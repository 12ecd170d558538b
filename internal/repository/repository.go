package repository

import (
	"blackjack_backend/internal/model"
	"context"
	"errors"
)

var (
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrNotEnoughBalance списание увело бы баланс в минус
	ErrNotEnoughBalance = errors.New("not enough balance")
)

// UserRepository сервис баланса игроков
type UserRepository interface {
	GetBalance(ctx context.Context, id int) (int, error)
	// AdjustBalance атомарно меняет баланс на delta (может быть отрицательной) и возвращает новый баланс
	AdjustBalance(ctx context.Context, id int, delta int) (int, error)
}

// BetRepository журнал рассчитанных ставок
type BetRepository interface {
	Record(ctx context.Context, rec model.BetRecord) (recordID string, err error)
	ListByPlayer(ctx context.Context, playerID int, limit int) ([]model.BetRecord, error)
}

// RoundRepository хранилище активных раундов, по одному на игрока
type RoundRepository interface {
	Get(playerID int) (*model.RoundSession, bool)
	Save(session *model.RoundSession)

	// Acquire занимает слот действия игрока. Пока слот занят, другие действия этого игрока отклоняются
	Acquire(playerID int) (release func(), ok bool)
}
