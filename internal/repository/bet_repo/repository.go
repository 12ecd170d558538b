package bet_repo

import (
	"blackjack_backend/internal/blackjack"
	"blackjack_backend/internal/model"
	"blackjack_backend/internal/repository"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "bets"
	colID          = "id"
	colUserID      = "user_id"
	colGameID      = "game_id"
	colRoundID     = "round_id"
	colAmount      = "amount"
	colOutcome     = "outcome"
	colProfit      = "profit"
	colPlayerScore = "player_score"
	colDealerScore = "dealer_score"
	colCreatedAt   = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Record - сохраняет рассчитанную ставку. Возвращает ID записи
func (r *repo) Record(ctx context.Context, rec model.BetRecord) (string, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	// Формируем запрос
	query := psql.Insert(table).
		Columns(colID, colUserID, colGameID, colRoundID, colAmount, colOutcome,
			colProfit, colPlayerScore, colDealerScore, colCreatedAt).
		Values(rec.ID, rec.PlayerID, rec.GameID, rec.RoundID, int64(rec.Amount), rec.Outcome.String(),
			int64(rec.Profit), rec.PlayerScore, rec.DealerScore, rec.CreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return "", err
	}

	return rec.ID.String(), nil
}

// ListByPlayer - последние ставки игрока, новые первыми
func (r *repo) ListByPlayer(ctx context.Context, playerID int, limit int) ([]model.BetRecord, error) {
	// Формируем запрос
	query := psql.Select(colID, colUserID, colGameID, colRoundID, colAmount, colOutcome,
		colProfit, colPlayerScore, colDealerScore, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: playerID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BetRecord, error) {
		var (
			rec     model.BetRecord
			amount  int64
			profit  int64
			outcome string
		)
		err := row.Scan(&rec.ID, &rec.PlayerID, &rec.GameID, &rec.RoundID, &amount, &outcome,
			&profit, &rec.PlayerScore, &rec.DealerScore, &rec.CreatedAt)
		if err != nil {
			return rec, err
		}

		rec.Amount = int(amount)
		rec.Profit = int(profit)
		rec.Outcome, err = parseOutcome(outcome)
		return rec, err
	})
}

func parseOutcome(s string) (blackjack.Outcome, error) {
	for _, o := range []blackjack.Outcome{blackjack.Won, blackjack.Lost, blackjack.Pushed, blackjack.Pending} {
		if o.String() == s {
			return o, nil
		}
	}
	return blackjack.Pending, fmt.Errorf("unknown outcome %q", s)
}
