package section_repo

import (
	"context"
	"errors"
	"fmt"
	"spin_wheel/internal/model"
	"spin_wheel/internal/repository"
	repoModel "spin_wheel/internal/repository/model"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	slotTable       = "wheel_slots"
	colSlotKey      = "slot_key"
	colSectionCount = "section_count"
	colUpdatedAt    = "updated_at"

	sectionTable  = "wheel_sections"
	colPosition   = "position"
	colStatements = "statements"
)

type repo struct {
	dbc       *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
	key       string
	capacity  int
}

// NewSectionRepository Слот секций в PostgreSQL.
// Заголовок слота и строки секций пишутся в одной транзакции
func NewSectionRepository(dbc *pgxpool.Pool, txManager trm.Manager, key string, capacity int) repository.SectionRepository {
	return &repo{
		dbc:       dbc,
		getter:    trmpgx.DefaultCtxGetter,
		txManager: txManager,
		key:       key,
		capacity:  capacity,
	}
}

// Load - получение секций слота по порядку позиций.
// Возвращает capacity пустых секций, если слота нет
func (r *repo) Load(ctx context.Context) ([]model.Section, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Формируем запрос заголовка
	query := sq.Select(colSectionCount).
		From(slotTable).
		Where(sq.Eq{colSlotKey: r.key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var count int
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewSections(r.capacity), nil
		}
		return nil, fmt.Errorf("%w: select slot %q: %w", model.ErrPersistence, r.key, err)
	}

	// Формируем запрос секций
	query = sq.Select(colPosition, colStatements).
		From(sectionTable).
		Where(sq.Eq{colSlotKey: r.key}).
		OrderBy(colPosition).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: select sections %q: %w", model.ErrPersistence, r.key, err)
	}
	defer rows.Close()

	records := make([]repoModel.Record, 0, count)
	for rows.Next() {
		var position int
		var statements []string
		if err := rows.Scan(&position, &statements); err != nil {
			return nil, fmt.Errorf("%w: scan section: %w", model.ErrPersistence, err)
		}
		// Позиции должны идти подряд с нуля
		if position != len(records) {
			return nil, fmt.Errorf("%w: slot %q has gap at position %d", model.ErrPersistence, r.key, len(records))
		}
		records = append(records, repoModel.Record{Statements: statements})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read sections: %w", model.ErrPersistence, err)
	}

	if len(records) != count {
		return nil, fmt.Errorf("%w: slot %q declares %d sections, found %d", model.ErrPersistence, r.key, count, len(records))
	}

	return repoModel.FromRecords(records, r.capacity)
}

// Save - перезапись слота целиком в транзакции:
// заголовок (обновление или вставка), удаление старых строк, вставка новых
func (r *repo) Save(ctx context.Context, sections []model.Section) error {
	records := repoModel.ToRecords(sections)

	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		conn := r.getter.DefaultTrOrDB(txCtx, r.dbc)

		query := sq.Update(slotTable).
			Set(colSectionCount, len(records)).
			Set(colUpdatedAt, sq.Expr("now()")).
			Where(sq.Eq{colSlotKey: r.key}).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}

		res, err := conn.Exec(txCtx, sqlStr, args...)
		if err != nil {
			return err
		}

		// Если rowsAffected = 0 - то слота не существует и делаем вставку
		if res.RowsAffected() == 0 {
			insertQuery := sq.Insert(slotTable).
				Columns(colSlotKey, colSectionCount).
				Values(r.key, len(records)).
				PlaceholderFormat(sq.Dollar)

			sqlStr, args, err = insertQuery.ToSql()
			if err != nil {
				return err
			}

			if _, err = conn.Exec(txCtx, sqlStr, args...); err != nil {
				return err
			}
		}

		deleteQuery := sq.Delete(sectionTable).
			Where(sq.Eq{colSlotKey: r.key}).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = deleteQuery.ToSql()
		if err != nil {
			return err
		}

		if _, err = conn.Exec(txCtx, sqlStr, args...); err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		insertQuery := sq.Insert(sectionTable).
			Columns(colSlotKey, colPosition, colStatements).
			PlaceholderFormat(sq.Dollar)
		for i, rec := range records {
			insertQuery = insertQuery.Values(r.key, i, rec.Statements)
		}

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = conn.Exec(txCtx, sqlStr, args...)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: save slot %q: %w", model.ErrPersistence, r.key, err)
	}
	return nil
}
