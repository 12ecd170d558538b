package blackjack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackedRound раунд, в котором карты раздаются в порядке: игрок, дилер (закрытая),
// игрок, дилер (открытая), далее добор
func stackedRound(cards string) *Round {
	return NewRound(NewStackedDeck(MustParseCards(cards)...))
}

func requireConservation(t *testing.T, r *Round) {
	t.Helper()

	total := r.DeckLen() + len(r.player) + len(r.dealer)
	require.Equal(t, 52, total, "cards lost or duplicated")

	seen := make(map[Card]bool)
	for _, c := range append(r.Player(), r.Dealer()...) {
		key := Card{Rank: c.Rank, Suit: c.Suit}
		require.False(t, seen[key], "card %s dealt twice", c)
		require.False(t, r.deck.Contains(c), "card %s both dealt and in deck", c)
		seen[key] = true
	}
}

func TestPlaceBetDealsInitialCards(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 6h 7s 9c")
	require.NoError(t, r.PlaceBet(20))

	assert.Equal(t, PlayerTurn, r.State())
	require.Len(t, r.Player(), 2)
	require.Len(t, r.Dealer(), 2)

	dealer := r.Dealer()
	assert.False(t, dealer[0].FaceUp, "hole card must be face down")
	assert.True(t, dealer[1].FaceUp)
	assert.Equal(t, 1, dealer.HiddenCount())

	assert.Equal(t, 17, r.PlayerScore())
	assert.Equal(t, 9, r.DealerScore())

	w, ok := r.Wager()
	require.True(t, ok)
	assert.Equal(t, Wager{Amount: 20, Outcome: Pending}, w)

	requireConservation(t, r)
}

func TestPlaceBetRejectsNonPositive(t *testing.T) {
	t.Parallel()

	r := NewRound(nil)
	assert.ErrorIs(t, r.PlaceBet(0), ErrInvalidBet)
	assert.ErrorIs(t, r.PlaceBet(-5), ErrInvalidBet)
	assert.Equal(t, Betting, r.State())
	assert.Empty(t, r.Player())
	assert.Equal(t, 52, r.DeckLen())
}

func TestScenarioDealerHitsAndWins(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 6h 7s 9c 5d")
	require.NoError(t, r.PlaceBet(20))
	require.Equal(t, 17, r.PlayerScore())

	require.NoError(t, r.Stand())

	assert.Equal(t, Settled, r.State())
	assert.Equal(t, 20, r.DealerScore())
	assert.Len(t, r.Dealer(), 3)

	w, _ := r.Wager()
	assert.Equal(t, Lost, w.Outcome)
	requireConservation(t, r)
}

func TestScenarioTwentyOneDisablesHit(t *testing.T) {
	t.Parallel()

	r := stackedRound("As 10h Kd Qc")
	require.NoError(t, r.PlaceBet(10))
	require.Equal(t, 21, r.PlayerScore())

	assert.False(t, r.Controls().Hit)
	assert.True(t, r.Controls().Stand)
	assert.ErrorIs(t, r.Hit(), ErrHitDisabled)
	assert.Equal(t, PlayerTurn, r.State())

	require.NoError(t, r.Stand())
	assert.Equal(t, 20, r.DealerScore())

	w, _ := r.Wager()
	assert.Equal(t, Won, w.Outcome)
}

func TestScenarioBustLosesImmediately(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 7h 9s 2c 5d")
	require.NoError(t, r.PlaceBet(10))
	require.Equal(t, 19, r.PlayerScore())

	require.NoError(t, r.Hit())

	assert.Equal(t, Settled, r.State())
	assert.Equal(t, 24, r.PlayerScore())
	w, _ := r.Wager()
	assert.Equal(t, Lost, w.Outcome)

	// Дилер не добирает, но закрытая карта вскрыта для записи
	assert.Len(t, r.Dealer(), 2)
	assert.Equal(t, 0, r.Dealer().HiddenCount())
	assert.Equal(t, 9, r.DealerScore())

	assert.ErrorIs(t, r.Stand(), ErrInvalidAction)
	assert.ErrorIs(t, r.Hit(), ErrInvalidAction)
	requireConservation(t, r)
}

func TestScenarioPush(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 9h 9s Kc")
	require.NoError(t, r.PlaceBet(10))
	require.NoError(t, r.Stand())

	assert.Equal(t, 19, r.PlayerScore())
	assert.Equal(t, 19, r.DealerScore())
	w, _ := r.Wager()
	assert.Equal(t, Pushed, w.Outcome)
}

func TestDealerBust(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 6h 2s 10c 8d")
	require.NoError(t, r.PlaceBet(10))
	require.NoError(t, r.Stand())

	assert.Equal(t, 24, r.DealerScore())
	w, _ := r.Wager()
	assert.Equal(t, Won, w.Outcome)
}

func TestDealerPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cards      string
		wantCards  int
		wantScore  int
		wantResult Outcome
	}{
		// Игрок всегда 10+8=18, дилер добирает только при сумме меньше 17
		{name: "twelve draws", cards: "10s 5h 8s 7c 5d", wantCards: 3, wantScore: 17, wantResult: Won},
		{name: "sixteen draws", cards: "10s 9h 8s 7c 2d", wantCards: 3, wantScore: 18, wantResult: Pushed},
		{name: "seventeen stands", cards: "10s 10h 8s 7c", wantCards: 2, wantScore: 17, wantResult: Won},
		{name: "twenty one stands", cards: "10s Ah 8s Kc", wantCards: 2, wantScore: 21, wantResult: Lost},
		{name: "soft seventeen stands", cards: "10s Ah 8s 6c", wantCards: 2, wantScore: 17, wantResult: Won},
		{name: "draws until seventeen", cards: "10s 2h 8s 3c 4d 2c 6h", wantCards: 5, wantScore: 17, wantResult: Won},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := stackedRound(tt.cards)
			require.NoError(t, r.PlaceBet(5))
			require.Equal(t, 18, r.PlayerScore())
			require.NoError(t, r.Stand())

			assert.Len(t, r.Dealer(), tt.wantCards)
			assert.Equal(t, tt.wantScore, r.DealerScore())
			w, _ := r.Wager()
			assert.Equal(t, tt.wantResult, w.Outcome)
			requireConservation(t, r)
		})
	}
}

func TestConservationDuringRandomRounds(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		r := NewRound(nil)
		require.NoError(t, r.PlaceBet(1))
		requireConservation(t, r)

		for r.State() == PlayerTurn && r.Controls().Hit && r.PlayerScore() < 17 {
			require.NoError(t, r.Hit())
			requireConservation(t, r)
		}
		if r.State() == PlayerTurn {
			require.NoError(t, r.Stand())
		}

		require.Equal(t, Settled, r.State())
		requireConservation(t, r)

		w, _ := r.Wager()
		require.NotEqual(t, Pending, w.Outcome)
		if r.PlayerScore() > 21 {
			require.Equal(t, Lost, w.Outcome, "bust must lose")
		} else {
			require.GreaterOrEqual(t, r.DealerScore(), 17)
		}
	}
}

func TestResetRestoresFullDeck(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 7h 9s 2c 5d")
	require.NoError(t, r.PlaceBet(10))
	require.NoError(t, r.Hit())
	require.Equal(t, Settled, r.State())

	require.NoError(t, r.Reset())

	assert.Equal(t, Betting, r.State())
	assert.Equal(t, 52, r.DeckLen())
	assert.Empty(t, r.Player())
	assert.Empty(t, r.Dealer())
	_, ok := r.Wager()
	assert.False(t, ok)
	assert.Equal(t, Controls{Bet: true}, r.Controls())

	// Повторный reset из Betting запрещен и ничего не меняет
	assert.ErrorIs(t, r.Reset(), ErrInvalidAction)
	assert.Equal(t, 52, r.DeckLen())

	require.NoError(t, r.PlaceBet(3))
	requireConservation(t, r)
}

func TestActionsOutOfOrder(t *testing.T) {
	t.Parallel()

	r := NewRound(nil)
	assert.ErrorIs(t, r.Hit(), ErrInvalidAction)
	assert.ErrorIs(t, r.Stand(), ErrInvalidAction)
	assert.ErrorIs(t, r.Reset(), ErrInvalidAction)

	require.NoError(t, r.PlaceBet(10))
	assert.ErrorIs(t, r.PlaceBet(10), ErrInvalidAction)
	assert.ErrorIs(t, r.Reset(), ErrInvalidAction)
}

func TestControlsFollowState(t *testing.T) {
	t.Parallel()

	r := stackedRound("10s 6h 2s 10c 8d")
	assert.Equal(t, Controls{Bet: true}, r.Controls())

	require.NoError(t, r.PlaceBet(10))
	assert.Equal(t, Controls{Hit: true, Stand: true}, r.Controls())

	require.NoError(t, r.Stand())
	assert.Equal(t, Controls{Reset: true}, r.Controls())
}

func TestDeckExhaustedAbandonsRound(t *testing.T) {
	t.Parallel()

	d := NewDeck(nil)
	d.cards = MustParseCards("10s 6h 7s")
	r := NewRound(d)

	err := r.PlaceBet(10)
	require.True(t, errors.Is(err, ErrDeckExhausted))
	assert.Equal(t, Abandoned, r.State())
	assert.ErrorIs(t, r.Err(), ErrDeckExhausted)
	assert.ErrorIs(t, r.Hit(), ErrInvalidAction)
	assert.Equal(t, Controls{Reset: true}, r.Controls())

	w, ok := r.Wager()
	require.True(t, ok)
	assert.Equal(t, Pending, w.Outcome)

	require.NoError(t, r.Reset())
	assert.Equal(t, Betting, r.State())
	assert.Equal(t, 52, r.DeckLen())
	assert.NoError(t, r.Err())
}

func TestTransitionTable(t *testing.T) {
	t.Parallel()

	next, ok := Settled.Next(ActionReset)
	require.True(t, ok)
	assert.Equal(t, Betting, next)

	assert.False(t, Betting.Allows(ActionHit))
	assert.False(t, Settled.Allows(ActionBet))
	assert.False(t, DealerTurn.Allows(ActionHit))
	assert.True(t, Abandoned.Terminal())
	assert.True(t, Settled.Terminal())
	assert.False(t, PlayerTurn.Terminal())
}
