package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/halsbagel/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
)

const monthlySummariesTable = "monthly_summaries ms"

type MonthlySummaryRepository interface {
	GetByPeriod(date time.Time) (*domain.MonthlySummary, error)
	SaveOrUpdate(summary *domain.MonthlySummary) error
	List() ([]*domain.MonthlySummary, error)
	GetAllPeriods() ([]string, error)
}

type monthlySummaryRepository struct {
	conn *postgres.Connection
}

func NewMonthlySummaryRepository(conn *postgres.Connection) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		conn: conn,
	}
}

func (r *monthlySummaryRepository) GetByPeriod(date time.Time) (*domain.MonthlySummary, error) {
	// Formatar a data no formato mm-yyyy
	period := fmt.Sprintf("%02d-%04d", int(date.Month()), date.Year())

	query, args, err := squirrel.
		Select("ms.id, ms.period, ms.summary, ms.created_at, ms.updated_at").
		From(monthlySummariesTable).
		Where(squirrel.Eq{"ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	summary, err := scanMonthlySummary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
	}

	return summary, nil
}

func (r *monthlySummaryRepository) SaveOrUpdate(summary *domain.MonthlySummary) error {
	var summaryJSON []byte
	var err error

	if summary.Summary != nil {
		summaryJSON, err = json.Marshal(summary.Summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_summaries").
		Columns("period", "summary").
		Values(summary.Period, summaryJSON).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				summary = EXCLUDED.summary,
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

// List retorna todos os snapshots mensais ordenados por período.
func (r *monthlySummaryRepository) List() ([]*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.period, ms.summary, ms.created_at, ms.updated_at").
		From(monthlySummariesTable).
		OrderBy("ms.period ASC").
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

	summaries := make([]*domain.MonthlySummary, 0)
	for rows.Next() {
		summary, err := scanMonthlySummaryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots mensais: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

// GetAllPeriods retorna todos os períodos disponíveis no formato mm-yyyy
func (r *monthlySummaryRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_summaries").
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func scanMonthlySummary(row *sql.Row) (*domain.MonthlySummary, error) {
	summary := &domain.MonthlySummary{}
	var summaryJSON []byte

	err := row.Scan(
		&summary.ID,
		&summary.Period,
		&summaryJSON,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if summaryJSON != nil {
		aggregate := &domain.Aggregate{}
		if err := json.Unmarshal(summaryJSON, aggregate); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
		}
		summary.Summary = aggregate
	}

	return summary, nil
}

func scanMonthlySummaryRows(rows *sql.Rows) (*domain.MonthlySummary, error) {
	summary := &domain.MonthlySummary{}
	var summaryJSON []byte

	err := rows.Scan(
		&summary.ID,
		&summary.Period,
		&summaryJSON,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if summaryJSON != nil {
		aggregate := &domain.Aggregate{}
		if err := json.Unmarshal(summaryJSON, aggregate); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do snapshot: %w", err)
		}
		summary.Summary = aggregate
	}

	return summary, nil
}
