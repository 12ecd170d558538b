package blackjack

import "errors"

var (
	// ErrDeckExhausted колода пуста. Раунд дальше продолжаться не может
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrInvalidAction действие недоступно в текущем состоянии раунда
	ErrInvalidAction = errors.New("action not allowed in current state")
	// ErrInvalidBet ставка должна быть положительной
	ErrInvalidBet = errors.New("bet must be positive")
	// ErrHitDisabled у игрока 21, добор запрещен до stand
	ErrHitDisabled = errors.New("hit disabled at 21")
)
