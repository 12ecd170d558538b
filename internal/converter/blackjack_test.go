package converter

import (
	"blackjack_backend/internal/blackjack"
	"encoding/json"
	"blackjack_backend/internal/model"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoundResponseMasksHoleCard(t *testing.T) {
	t.Parallel()

	dealer := blackjack.Hand(blackjack.MustParseCards("Kh 9c"))
	dealer[1].FaceUp = true
	player := blackjack.Hand(blackjack.MustParseCards("10s 7d"))
	player[0].FaceUp = true
	player[1].FaceUp = true

	balance := 80
	res := model.RoundResult{
		RoundID:     uuid.New(),
		State:       blackjack.PlayerTurn,
		Player:      player,
		Dealer:      dealer,
		PlayerScore: 17,
		DealerScore: 9,
		Wager:       &blackjack.Wager{Amount: 20, Outcome: blackjack.Pending},
		Controls:    blackjack.Controls{Hit: true, Stand: true},
		Balance:     &balance,
	}

	out := ToRoundResponse(res)

	assert.Equal(t, "player_turn", out.State)
	require.Len(t, out.DealerCards, 2)
	assert.False(t, out.DealerCards[0].FaceUp)
	assert.Empty(t, out.DealerCards[0].Rank)
	assert.Empty(t, out.DealerCards[0].Suit)
	assert.Equal(t, "9", out.DealerCards[1].Rank)
	assert.Equal(t, "10", out.PlayerCards[0].Rank)
	assert.Equal(t, "pending", out.Wager.Outcome)
	assert.True(t, out.Controls.Hit)
	assert.Nil(t, out.Settlement)
	require.NotNil(t, out.Balance)
	assert.Equal(t, 80, *out.Balance)
}

func TestToRoundResponseSettlement(t *testing.T) {
	t.Parallel()

	out := ToRoundResponse(model.RoundResult{
		State: blackjack.Settled,
		Settlement: &model.Settlement{
			Outcome:     blackjack.Pushed,
			Amount:      10,
			Payout:      10,
			LedgerError: "bet ledger error: timeout",
		},
	})

	require.NotNil(t, out.Settlement)
	assert.Equal(t, "pushed", out.Settlement.Outcome)
	assert.Equal(t, 0, out.Settlement.Profit)
	assert.Equal(t, "bet ledger error: timeout", out.Settlement.LedgerError)
	assert.NotNil(t, out.PlayerCards, "empty hands encode as []")
}

func TestToRoundResponseUnknownBalance(t *testing.T) {
	t.Parallel()

	player := blackjack.Hand(blackjack.MustParseCards("As 5d"))
	player[0].FaceUp = true
	player[1].FaceUp = true

	out := ToRoundResponse(model.RoundResult{
		State:       blackjack.PlayerTurn,
		Player:      player,
		PlayerScore: 16,
		PlayerSoft:  true,
	})

	assert.Nil(t, out.Balance)
	assert.True(t, out.PlayerSoft)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"balance"`)
	assert.Contains(t, string(raw), `"player_soft":true`)
}
