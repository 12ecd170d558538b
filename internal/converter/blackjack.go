package converter

import (
	dto "blackjack_backend/internal/api/dto/blackjack"
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/model"
)

func ToRoundResponse(res model.RoundResult) dto.RoundResponse {
	out := dto.RoundResponse{
		RoundID:     res.RoundID.String(),
		State:       res.State.String(),
		PlayerCards: toCards(res.Player),
		DealerCards: toCards(res.Dealer),
		PlayerScore: res.PlayerScore,
		PlayerSoft:  res.PlayerSoft,
		DealerScore: res.DealerScore,
		Controls: dto.Controls{
			Bet:   res.Controls.Bet,
			Hit:   res.Controls.Hit,
			Stand: res.Controls.Stand,
			Reset: res.Controls.Reset,
		},
		Balance: res.Balance,
	}

	if res.Wager != nil {
		out.Wager = &dto.Wager{
			Amount:  res.Wager.Amount,
			Outcome: res.Wager.Outcome.String(),
		}
	}

	if res.Settlement != nil {
		out.Settlement = &dto.Settlement{
			Outcome:     res.Settlement.Outcome.String(),
			Amount:      res.Settlement.Amount,
			Payout:      res.Settlement.Payout,
			Profit:      res.Settlement.Profit,
			RecordID:    res.Settlement.RecordID,
			LedgerError: res.Settlement.LedgerError,
		}
	}

	return out
}

// toCards закрытые карты отдаются без ранга и масти
func toCards(hand blackjack.Hand) []dto.Card {
	result := make([]dto.Card, len(hand))
	for i, c := range hand {
		if !c.FaceUp {
			continue
		}
		result[i] = dto.Card{
			Rank:   c.Rank.String(),
			Suit:   c.Suit.String(),
			FaceUp: true,
		}
	}
	return result
}

func ToHistoryResponse(records []model.BetRecord) dto.HistoryResponse {
	bets := make([]dto.BetRecord, len(records))
	for i, r := range records {
		bets[i] = dto.BetRecord{
			ID:          r.ID.String(),
			RoundID:     r.RoundID.String(),
			Amount:      r.Amount,
			Outcome:     r.Outcome.String(),
			Profit:      r.Profit,
			PlayerScore: r.PlayerScore,
			DealerScore: r.DealerScore,
			CreatedAt:   r.CreatedAt,
		}
	}
	return dto.HistoryResponse{Bets: bets}
}
