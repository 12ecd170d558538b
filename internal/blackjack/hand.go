package blackjack

// BlackjackScore максимальная непереборная сумма очков
const BlackjackScore = 21

// Hand упорядоченные карты одной стороны (игрока или дилера)
type Hand []Card

// Score сумма очков открытых карт руки
func (h Hand) Score() int {
	total, _ := evaluate(h)
	return total
}

// Soft true, если хотя бы один туз в сумме считается за 11
func (h Hand) Soft() bool {
	_, soft := evaluate(h)
	return soft
}

// Busted перебор
func (h Hand) Busted() bool {
	return h.Score() > BlackjackScore
}

// HiddenCount количество карт рубашкой вверх
func (h Hand) HiddenCount() int {
	n := 0
	for _, c := range h {
		if !c.FaceUp {
			n++
		}
	}
	return n
}

// Score считает очки по правилу мягкого/жесткого туза. Закрытые карты не учитываются.
//
// Сначала суммируются открытые карты без тузов. Затем открытые тузы по порядку в руке:
// туз стоит 1, если 11 дает перебор, либо если 11 дает ровно 21, а тузов в руке больше одного
// (тогда высокое значение откладывается на следующий туз). Иначе туз стоит 11
func Score(cards []Card) int {
	total, _ := evaluate(cards)
	return total
}

func evaluate(cards []Card) (total int, soft bool) {
	aces := 0
	for _, c := range cards {
		if c.Rank == Ace {
			aces++
			continue
		}
		if c.FaceUp {
			total += c.Rank.value()
		}
	}

	for _, c := range cards {
		if c.Rank != Ace || !c.FaceUp {
			continue
		}
		switch {
		case total+11 > BlackjackScore:
			total++
		case total+11 == BlackjackScore && aces > 1:
			total++
		default:
			total += 11
			soft = true
		}
	}

	return total, soft
}
