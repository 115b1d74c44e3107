package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/halsbagel/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
)

const minimumTargetsTable = "minimum_targets"

type MinimumTargetRepository interface {
	List() ([]*domain.MinimumTarget, error)
	Upsert(target *domain.MinimumTarget) error
}

type minimumTargetRepository struct {
	conn *postgres.Connection
}

func NewMinimumTargetRepository(conn *postgres.Connection) MinimumTargetRepository {
	return &minimumTargetRepository{
		conn: conn,
	}
}

// List retorna os pisos mensais ordenados por mês do calendário (1-12).
func (r *minimumTargetRepository) List() ([]*domain.MinimumTarget, error) {
	query, args, err := squirrel.
		Select("month", "min_sales", "updated_at").
		From(minimumTargetsTable).
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.MinimumTarget, 0)
	for rows.Next() {
		target := &domain.MinimumTarget{}
		if err := rows.Scan(&target.Month, &target.MinSales, &target.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear piso mensal: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func (r *minimumTargetRepository) Upsert(target *domain.MinimumTarget) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(minimumTargetsTable).
		Columns("month", "min_sales").
		Values(target.Month, target.MinSales).
		Suffix(`
			ON CONFLICT (month) DO UPDATE SET
				min_sales = EXCLUDED.min_sales,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
