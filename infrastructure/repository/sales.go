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

const salesTable = "sales"

var salesColumns = []string{
	"id", "year", "month", "date",
	"store_sales", "delivery_sales", "other_sales", "actual_sales",
	"customer_count", "unit_price", "created_at", "updated_at",
}

type SalesRepository interface {
	Fetch(year, month int) ([]*domain.SalesRecord, error)
	FetchRange(start, end time.Time) ([]*domain.SalesRecord, error)
	GetByDate(date time.Time) (*domain.SalesRecord, error)
	Upsert(record *domain.SalesRecord) error
	DeleteByDate(date time.Time) (bool, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// Fetch busca os lançamentos filtrando por ano e/ou mês. Zero significa
// "sem filtro", espelhando os parâmetros opcionais do dashboard.
func (r *salesRepository) Fetch(year, month int) ([]*domain.SalesRecord, error) {
	builder := squirrel.
		Select(salesColumns...).
		From(salesTable).
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

	return r.queryRecords(query, args)
}

// FetchRange busca os lançamentos com data dentro de [start, end].
func (r *salesRepository) FetchRange(start, end time.Time) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesColumns...).
		From(salesTable).
		Where(squirrel.GtOrEq{"date": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": end.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRecords(query, args)
}

func (r *salesRepository) GetByDate(date time.Time) (*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesColumns...).
		From(salesTable).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	records, err := r.queryRecords(query, args)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	return records[0], nil
}

// Upsert grava o lançamento do dia de forma atômica: um único INSERT com
// ON CONFLICT na data substitui todos os campos, sem a janela de corrida
// do read-then-write. A última gravação vence.
func (r *salesRepository) Upsert(record *domain.SalesRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns(
			"year", "month", "date",
			"store_sales", "delivery_sales", "other_sales", "actual_sales",
			"customer_count", "unit_price",
		).
		Values(
			record.Year,
			record.Month,
			record.Date.Format(time.DateOnly),
			record.StoreSales,
			record.DeliverySales,
			record.OtherSales,
			record.ActualSales,
			record.CustomerCount,
			record.UnitPrice,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				year = EXCLUDED.year,
				month = EXCLUDED.month,
				store_sales = EXCLUDED.store_sales,
				delivery_sales = EXCLUDED.delivery_sales,
				other_sales = EXCLUDED.other_sales,
				actual_sales = EXCLUDED.actual_sales,
				customer_count = EXCLUDED.customer_count,
				unit_price = EXCLUDED.unit_price,
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

func (r *salesRepository) DeleteByDate(date time.Time) (bool, error) {
	query, args, err := squirrel.
		Delete(salesTable).
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

func (r *salesRepository) queryRecords(query string, args []interface{}) ([]*domain.SalesRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento de vendas: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// scanSalesRecord escaneia uma linha aceitando colunas numéricas
// malformadas: valores não numéricos viram 0 via coerção tolerante em
// vez de abortar o relatório inteiro.
func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}
	var store, delivery, other, actual, customers, unit any

	err := rows.Scan(
		&record.ID,
		&record.Year,
		&record.Month,
		&record.Date,
		&store,
		&delivery,
		&other,
		&actual,
		&customers,
		&unit,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.StoreSales = utils.CoerceInt(store)
	record.DeliverySales = utils.CoerceInt(delivery)
	record.OtherSales = utils.CoerceInt(other)
	record.ActualSales = utils.CoerceInt(actual)
	record.CustomerCount = utils.CoerceInt(customers)
	record.UnitPrice = utils.CoerceInt(unit)

	return record, nil
}
