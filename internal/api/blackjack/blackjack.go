package blackjack

import (
	dto "blackjack_backend/internal/api/dto/blackjack"
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/converter"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/service"
	"blackjack_backend/pkg/req"
	"blackjack_backend/pkg/resp"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
)

type HandlerDeps struct {
	Serv   service.BlackjackService
	Logger *log.Logger
}

type Handler struct {
	serv   service.BlackjackService
	logger *log.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Bet принимает ставку и раздает начальные карты
func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.roundAction(w, r, func(ctx context.Context) (*model.RoundResult, error) {
		return h.serv.PlaceBet(ctx, payload.Amount)
	})
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, h.serv.Hit)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, h.serv.Stand)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, h.serv.Reset)
}

func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	h.roundAction(w, r, h.serv.Round)
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.Balance(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.serv.History(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

// roundAction общий путь для действий над раундом. Если сервис вернул и раунд, и ошибку
// (сбой баланса при расчете, пустая колода), раунд отдается вместе с ошибкой
func (h *Handler) roundAction(w http.ResponseWriter, r *http.Request, action func(context.Context) (*model.RoundResult, error)) {
	result, err := action(r.Context())
	if err != nil && result == nil {
		h.writeError(w, err)
		return
	}

	response := converter.ToRoundResponse(*result)
	status := http.StatusOK
	if err != nil {
		response.Error = err.Error()
		status = statusFor(err)
	}

	resp.WriteJSONResponse(w, status, response)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "err", err)
	}
	resp.WriteError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, blackjack.ErrInvalidBet),
		errors.Is(err, service.ErrBetOutOfLimits):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrNoRound):
		return http.StatusNotFound
	// Сбой баланса важнее прерванного раунда: возврат ставки мог не пройти
	case errors.Is(err, service.ErrBalanceService),
		errors.Is(err, service.ErrLedgerService):
		return http.StatusBadGateway
	case errors.Is(err, blackjack.ErrInvalidAction),
		errors.Is(err, blackjack.ErrHitDisabled),
		errors.Is(err, blackjack.ErrDeckExhausted),
		errors.Is(err, service.ErrRoundInProgress):
		return http.StatusConflict
	case errors.Is(err, service.ErrActionInProgress):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}
