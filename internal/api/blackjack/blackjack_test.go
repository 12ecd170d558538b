package blackjack

import (
	dto "blackjack_backend/internal/api/dto/blackjack"
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	result    *model.RoundResult
	err       error
	betAmount int
	limit     int
	records   []model.BetRecord
	balance   int
}

func (f *fakeService) PlaceBet(_ context.Context, amount int) (*model.RoundResult, error) {
	f.betAmount = amount
	return f.result, f.err
}

func (f *fakeService) Hit(context.Context) (*model.RoundResult, error)   { return f.result, f.err }
func (f *fakeService) Stand(context.Context) (*model.RoundResult, error) { return f.result, f.err }
func (f *fakeService) Reset(context.Context) (*model.RoundResult, error) { return f.result, f.err }
func (f *fakeService) Round(context.Context) (*model.RoundResult, error) { return f.result, f.err }

func (f *fakeService) Balance(context.Context) (int, error) {
	return f.balance, f.err
}

func (f *fakeService) History(_ context.Context, limit int) ([]model.BetRecord, error) {
	f.limit = limit
	return f.records, f.err
}

func newHandler(f *fakeService) *Handler {
	return NewHandler(HandlerDeps{Serv: f, Logger: log.New(io.Discard)})
}

func settledResult() *model.RoundResult {
	player := blackjack.Hand(blackjack.MustParseCards("As Kd"))
	dealer := blackjack.Hand(blackjack.MustParseCards("10h Qc"))
	for i := range player {
		player[i].FaceUp = true
		dealer[i].FaceUp = true
	}
	balance := 110
	return &model.RoundResult{
		RoundID:     uuid.New(),
		State:       blackjack.Settled,
		Player:      player,
		Dealer:      dealer,
		PlayerScore: 21,
		DealerScore: 20,
		Wager:       &blackjack.Wager{Amount: 10, Outcome: blackjack.Won},
		Controls:    blackjack.Controls{Reset: true},
		Balance:     &balance,
		Settlement:  &model.Settlement{Outcome: blackjack.Won, Amount: 10, Payout: 20, Profit: 10},
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func TestBet(t *testing.T) {
	t.Parallel()

	f := &fakeService{result: settledResult()}
	h := newHandler(f)

	r := httptest.NewRequest(http.MethodPost, "/blackjack/bet", strings.NewReader(`{"amount": 10}`))
	w := httptest.NewRecorder()
	h.Bet(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, f.betAmount)

	body := decode[dto.RoundResponse](t, w)
	assert.Equal(t, "settled", body.State)
	require.NotNil(t, body.Balance)
	assert.Equal(t, 110, *body.Balance)
	require.NotNil(t, body.Settlement)
	assert.Equal(t, "won", body.Settlement.Outcome)
	assert.Equal(t, 20, body.Settlement.Payout)
}

func TestBetBadBody(t *testing.T) {
	t.Parallel()

	h := newHandler(&fakeService{})

	for _, body := range []string{"", "{", `{"amount": "ten"}`, `{"amount": 1, "extra": true}`} {
		r := httptest.NewRequest(http.MethodPost, "/blackjack/bet", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.Bet(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
	}
}

func TestErrorStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrUnauthorized, want: http.StatusUnauthorized},
		{err: blackjack.ErrInvalidBet, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: 5000", service.ErrBetOutOfLimits), want: http.StatusBadRequest},
		{err: service.ErrInsufficientFunds, want: http.StatusPaymentRequired},
		{err: service.ErrNoRound, want: http.StatusNotFound},
		{err: fmt.Errorf("%w: hit in settled", blackjack.ErrInvalidAction), want: http.StatusConflict},
		{err: blackjack.ErrHitDisabled, want: http.StatusConflict},
		{err: blackjack.ErrDeckExhausted, want: http.StatusConflict},
		{err: service.ErrRoundInProgress, want: http.StatusConflict},
		{err: service.ErrActionInProgress, want: http.StatusTooManyRequests},
		{err: fmt.Errorf("%w: debit: eof", service.ErrBalanceService), want: http.StatusBadGateway},
		{err: errors.Join(blackjack.ErrDeckExhausted, fmt.Errorf("%w: credit 10: eof", service.ErrBalanceService)), want: http.StatusBadGateway},
		{err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := newHandler(&fakeService{err: tt.err})

			w := httptest.NewRecorder()
			h.Hit(w, httptest.NewRequest(http.MethodPost, "/blackjack/hit", nil))

			assert.Equal(t, tt.want, w.Code)
			body := decode[map[string]string](t, w)
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}

func TestStandWithCreditFailureReturnsRound(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: credit 20: timeout", service.ErrBalanceService)
	h := newHandler(&fakeService{result: settledResult(), err: err})

	w := httptest.NewRecorder()
	h.Stand(w, httptest.NewRequest(http.MethodPost, "/blackjack/stand", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decode[dto.RoundResponse](t, w)
	assert.Equal(t, "settled", body.State)
	assert.Equal(t, "won", body.Settlement.Outcome)
	assert.Equal(t, err.Error(), body.Error)
}

func TestBalance(t *testing.T) {
	t.Parallel()

	h := newHandler(&fakeService{balance: 75})

	w := httptest.NewRecorder()
	h.Balance(w, httptest.NewRequest(http.MethodGet, "/blackjack/balance", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 75, decode[dto.BalanceResponse](t, w).Balance)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	f := &fakeService{records: []model.BetRecord{{
		ID:      uuid.New(),
		RoundID: uuid.New(),
		Amount:  10,
		Outcome: blackjack.Pushed,
	}}}
	h := newHandler(f)

	w := httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/blackjack/history?limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, f.limit)
	body := decode[dto.HistoryResponse](t, w)
	require.Len(t, body.Bets, 1)
	assert.Equal(t, "pushed", body.Bets[0].Outcome)

	w = httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/blackjack/history?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
