package recording

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Colunas esperadas no CSV de importação, na ordem.
var csvHeader = []string{"date", "store_sales", "delivery_sales", "other_sales", "customer_count"}

// ImportSalesCSV importa lançamentos de um arquivo CSV. Cada linha vira
// um upsert independente: uma linha malformada (data inválida, colunas
// faltando) é registrada no resultado e pulada, sem abortar o lote. Os
// valores numéricos passam pela coerção tolerante — "1,200円" vale 1200
// e lixo não numérico vale 0.
func (s *Service) ImportSalesCSV(r io.Reader) (*domain.ImportResult, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do lote: %w", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o CSV: %w", err)
	}

	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{BatchID: batchID}

	line := 1
	for {
		line++

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, domain.ImportRowError{
				Line:    line,
				Message: fmt.Sprintf("linha ilegível: %v", err),
			})
			continue
		}

		if len(row) < len(csvHeader) {
			result.Skipped++
			result.Errors = append(result.Errors, domain.ImportRowError{
				Line:    line,
				Message: fmt.Sprintf("esperadas %d colunas, encontradas %d", len(csvHeader), len(row)),
			})
			continue
		}

		date, err := time.Parse(time.DateOnly, strings.TrimSpace(row[0]))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, domain.ImportRowError{
				Line:    line,
				Message: fmt.Sprintf("data inválida: %q", row[0]),
			})
			continue
		}

		record := &domain.SalesRecord{
			Date:          date,
			StoreSales:    utils.ParseLenientInt(row[1]),
			DeliverySales: utils.ParseLenientInt(row[2]),
			OtherSales:    utils.ParseLenientInt(row[3]),
			CustomerCount: utils.ParseLenientInt(row[4]),
		}
		record.Normalize()

		if err := s.salesRepository.Upsert(record); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, domain.ImportRowError{
				Line:    line,
				Message: fmt.Sprintf("erro ao gravar: %v", err),
			})
			continue
		}

		result.Imported++
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": result.BatchID,
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Importação de CSV concluída")

	return result, nil
}

// ExportSalesCSV exporta os lançamentos de um mês no mesmo layout aceito
// pela importação.
func (s *Service) ExportSalesCSV(w io.Writer, year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	records, err := s.salesRepository.Fetch(year, month)
	if err != nil {
		return fmt.Errorf("erro ao buscar lançamentos para exportação: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("erro ao escrever o CSV: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Date.Format(time.DateOnly),
			strconv.FormatInt(rec.StoreSales, 10),
			strconv.FormatInt(rec.DeliverySales, 10),
			strconv.FormatInt(rec.OtherSales, 10),
			strconv.FormatInt(rec.CustomerCount, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("erro ao escrever o CSV: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

func validateHeader(header []string) error {
	if len(header) < len(csvHeader) {
		return fmt.Errorf("%w: esperadas as colunas %s", ErrInvalidCSV, strings.Join(csvHeader, ","))
	}

	for i, want := range csvHeader {
		got := strings.ToLower(strings.TrimSpace(header[i]))
		if got != want {
			return fmt.Errorf("%w: coluna %d deveria ser %q, veio %q", ErrInvalidCSV, i+1, want, header[i])
		}
	}

	return nil
}
