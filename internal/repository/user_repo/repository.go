package user_repo

import (
	"blackjack_backend/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "users"
	colID      = "id"
	colBalance = "balance"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetBalance - получение баланса пользователя по его ID.
// Если пользователя нет, возвращает repository.ErrNotFound
func (r *repo) GetBalance(ctx context.Context, id int) (int, error) {
	sqlStr, args, err := balanceQuery(id).ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %d: %w", id, repository.ErrNotFound)
		}
		return 0, err
	}

	return int(balance), nil
}

// AdjustBalance - меняет баланс одним UPDATE, поэтому изменение атомарно.
// Списание, после которого баланс стал бы отрицательным, не выполняется
func (r *repo) AdjustBalance(ctx context.Context, id int, delta int) (int, error) {
	sqlStr, args, err := adjustQuery(id, delta).ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, err
		}
		_, err := r.GetBalance(ctx, id)
		return 0, noRowsUpdated(err)
	}

	return int(balance), nil
}

func balanceQuery(id int) sq.SelectBuilder {
	return psql.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id})
}

// adjustQuery списание дополнительно ограничено условием balance >= -delta,
// зачисление выполняется безусловно
func adjustQuery(id int, delta int) sq.UpdateBuilder {
	query := psql.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", int64(delta))).
		Where(sq.Eq{colID: id}).
		Suffix("RETURNING " + colBalance)
	if delta < 0 {
		query = query.Where(sq.GtOrEq{colBalance: int64(-delta)})
	}
	return query
}

// noRowsUpdated строка не обновилась: либо нет пользователя (lookupErr от GetBalance),
// либо не хватает денег
func noRowsUpdated(lookupErr error) error {
	if lookupErr != nil {
		return lookupErr
	}
	return repository.ErrNotEnoughBalance
}
