package blackjack

// State состояние раунда
type State int

const (
	Betting State = iota
	Dealing
	PlayerTurn
	DealerTurn
	Settled
	// Abandoned раунд прерван из-за пустой колоды, выход только через reset
	Abandoned
)

func (s State) String() string {
	switch s {
	case Betting:
		return "betting"
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Settled:
		return "settled"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// Terminal раунд завершен и ждет reset
func (s State) Terminal() bool {
	return s == Settled || s == Abandoned
}

// Action событие, переводящее раунд из одного состояния в другое
type Action int

const (
	ActionBet Action = iota
	ActionDeal
	ActionHit
	ActionBust
	ActionStand
	ActionDealerDraw
	ActionSettle
	ActionAbandon
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionBet:
		return "bet"
	case ActionDeal:
		return "deal"
	case ActionHit:
		return "hit"
	case ActionBust:
		return "bust"
	case ActionStand:
		return "stand"
	case ActionDealerDraw:
		return "dealer_draw"
	case ActionSettle:
		return "settle"
	case ActionAbandon:
		return "abandon"
	case ActionReset:
		return "reset"
	}
	return "unknown"
}

// transitions таблица переходов. Все, чего здесь нет, запрещено
var transitions = map[State]map[Action]State{
	Betting: {
		ActionBet: Dealing,
	},
	Dealing: {
		ActionDeal:    PlayerTurn,
		ActionAbandon: Abandoned,
	},
	PlayerTurn: {
		ActionHit:     PlayerTurn,
		ActionBust:    Settled,
		ActionStand:   DealerTurn,
		ActionAbandon: Abandoned,
	},
	DealerTurn: {
		ActionDealerDraw: DealerTurn,
		ActionSettle:     Settled,
		ActionAbandon:    Abandoned,
	},
	Settled: {
		ActionReset: Betting,
	},
	Abandoned: {
		ActionReset: Betting,
	},
}

// Next состояние после действия a. ok == false, если действие запрещено
func (s State) Next(a Action) (State, bool) {
	next, ok := transitions[s][a]
	return next, ok
}

// Allows разрешено ли действие в состоянии
func (s State) Allows(a Action) bool {
	_, ok := s.Next(a)
	return ok
}

// Controls доступность кнопок интерфейса, выводится из состояния
type Controls struct {
	Bet   bool
	Hit   bool
	Stand bool
	Reset bool
}
