package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/halsbagel/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/pkg/utils"
)

const targetsTable = "targets"

var targetColumns = []string{
	"id", "year", "month", "date", "target_sales", "created_at", "updated_at",
}

type TargetRepository interface {
	Fetch(year, month int) ([]*domain.TargetRecord, error)
	FetchRange(start, end time.Time) ([]*domain.TargetRecord, error)
	Upsert(target *domain.TargetRecord) error
	DeleteByDate(date time.Time) (bool, error)
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

func (r *targetRepository) Fetch(year, month int) ([]*domain.TargetRecord, error) {
	builder := squirrel.
		Select(targetColumns...).
		From(targetsTable).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if year > 0 {
		builder = builder.Where(squirrel.Eq{"year": year})
	}
	if month > 0 {
		builder = builder.Where(squirrel.Eq{"month": month})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTargets(query, args)
}

func (r *targetRepository) FetchRange(start, end time.Time) ([]*domain.TargetRecord, error) {
	query, args, err := squirrel.
		Select(targetColumns...).
		From(targetsTable).
		Where(squirrel.GtOrEq{"date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": end.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryTargets(query, args)
}

// Upsert grava a meta do dia com ON CONFLICT na data, mesmo contrato
// atômico do repositório de vendas.
func (r *targetRepository) Upsert(target *domain.TargetRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(targetsTable).
		Columns("year", "month", "date", "target_sales").
		Values(
			target.Year,
			target.Month,
			target.Date.Format(time.DateOnly),
			target.TargetSales,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				year = EXCLUDED.year,
				month = EXCLUDED.month,
				target_sales = EXCLUDED.target_sales,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *targetRepository) DeleteByDate(date time.Time) (bool, error) {
	query, args, err := squirrel.
		Delete(targetsTable).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *targetRepository) queryTargets(query string, args []interface{}) ([]*domain.TargetRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.TargetRecord, 0)
	for rows.Next() {
		target := &domain.TargetRecord{}
		var amount any

		err := rows.Scan(
			&target.ID,
			&target.Year,
			&target.Month,
			&target.Date,
			&amount,
			&target.CreatedAt,
			&target.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta de vendas: %w", err)
		}

		target.TargetSales = utils.CoerceInt(amount)
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}
