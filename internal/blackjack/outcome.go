package blackjack

// Outcome итог ставки
type Outcome int

const (
	Pending Outcome = iota
	Won
	Lost
	Pushed
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Pushed:
		return "pushed"
	}
	return "unknown"
}

// Wager ставка раунда. Amount списывается с баланса в момент ставки
type Wager struct {
	Amount  int
	Outcome Outcome
}

// DetermineOutcome итог по финальным очкам после хода дилера.
// Перебор игрока обрабатывается раньше и сюда не попадает
func DetermineOutcome(playerScore, dealerScore int) Outcome {
	switch {
	case dealerScore > BlackjackScore:
		return Won
	case playerScore > dealerScore:
		return Won
	case playerScore < dealerScore:
		return Lost
	default:
		return Pushed
	}
}

// Payout сумма к зачислению на баланс при расчете.
// Выигрыш возвращает ставку и столько же сверху, ничья возвращает ставку
func Payout(o Outcome, amount int) int {
	switch o {
	case Won:
		return 2 * amount
	case Pushed:
		return amount
	default:
		return 0
	}
}

// Profit чистый результат игрока для записи в журнал ставок. Ничья дает 0
func Profit(o Outcome, amount int) int {
	switch o {
	case Won:
		return amount
	case Lost:
		return -amount
	default:
		return 0
	}
}
