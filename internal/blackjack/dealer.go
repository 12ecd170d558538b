package blackjack

// DealerStandScore дилер останавливается на 17 и выше, включая мягкие 17
const DealerStandScore = 17

// DealerShouldHit решение дилера по текущей сумме очков
func DealerShouldHit(score int) bool {
	return score < DealerStandScore
}
