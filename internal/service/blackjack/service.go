package blackjack

import (
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/config"
	"blackjack_backend/internal/middleware"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/repository"
	"blackjack_backend/internal/service"
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

type serv struct {
	cfg       config.BlackjackConfig
	userRepo  repository.UserRepository
	betRepo   repository.BetRepository
	roundRepo repository.RoundRepository
	txManager trm.Manager
	logger    *log.Logger
	clock     quartz.Clock
	newDeck   func() *blackjack.Deck
}

type Option func(*serv)

// WithClock часы для отметок времени в журнале ставок
func WithClock(c quartz.Clock) Option {
	return func(s *serv) { s.clock = c }
}

// WithDeckFactory источник колод для новых раундов
func WithDeckFactory(f func() *blackjack.Deck) Option {
	return func(s *serv) { s.newDeck = f }
}

// NewBlackjackService Создать сервис раундов блэкджека
func NewBlackjackService(
	cfg config.BlackjackConfig,
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	roundRepo repository.RoundRepository,
	txManager trm.Manager,
	logger *log.Logger,
	opts ...Option,
) service.BlackjackService {
	s := &serv{
		cfg:       cfg,
		userRepo:  userRepo,
		betRepo:   betRepo,
		roundRepo: roundRepo,
		txManager: txManager,
		logger:    logger.WithPrefix("blackjack"),
		clock:     quartz.NewReal(),
		newDeck:   func() *blackjack.Deck { return blackjack.NewDeck(nil) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// begin достает игрока из контекста и занимает его слот действия
func (s *serv) begin(ctx context.Context) (int, func(), error) {
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, nil, service.ErrUnauthorized
	}

	release, ok := s.roundRepo.Acquire(playerID)
	if !ok {
		s.logger.Warn("action rejected, previous one in flight", "player", playerID)
		return 0, nil, service.ErrActionInProgress
	}

	return playerID, release, nil
}

// result снимок раунда для ответа игроку. Вызывается либо владельцем слота действия,
// либо внутри session.View
func result(session *model.RoundSession, balance *int, st *model.Settlement) *model.RoundResult {
	r := session.Round
	player := r.Player()
	res := &model.RoundResult{
		RoundID:     session.ID,
		State:       r.State(),
		Player:      player,
		Dealer:      r.Dealer(),
		PlayerScore: r.PlayerScore(),
		PlayerSoft:  player.Soft(),
		DealerScore: r.DealerScore(),
		Controls:    r.Controls(),
		Balance:     balance,
		Settlement:  st,
	}
	if w, ok := r.Wager(); ok {
		res.Wager = &w
	}
	return res
}

// known баланс, прочитанный без ошибки
func known(balance int) *int {
	return &balance
}

// readBalance баланс для ответа. Ошибка чтения только логируется, в ответе баланса не будет
func (s *serv) readBalance(ctx context.Context, playerID int) *int {
	balance, err := s.userRepo.GetBalance(ctx, playerID)
	if err != nil {
		s.logger.Warn("balance read failed", "player", playerID, "err", err)
		return nil
	}
	return &balance
}
