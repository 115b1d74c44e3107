package recording

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ImportSalesCSV(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	csv := strings.Join([]string{
		"date,store_sales,delivery_sales,other_sales,customer_count",
		"2025-03-01,10000,2000,0,25",
		`2025-03-02,"1,200円",0,0,3人`,
	}, "\n")

	var saved []*domain.SalesRecord
	salesRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(record *domain.SalesRecord) error {
			saved = append(saved, record)
			return nil
		}).
		Times(2)

	result, err := service.ImportSalesCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.BatchID, 8)

	require.Len(t, saved, 2)
	assert.Equal(t, int64(12000), saved[0].ActualSales)

	// Valores com separador de milhar e sufixos passam pela coerção.
	assert.Equal(t, int64(1200), saved[1].StoreSales)
	assert.Equal(t, int64(3), saved[1].CustomerCount)
}

func TestService_ImportSalesCSV_LinhasMalformadasNaoAbortamOLote(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	csv := strings.Join([]string{
		"date,store_sales,delivery_sales,other_sales,customer_count",
		"2025-03-01,10000,0,0,10",
		"não-é-data,5000,0,0,5",
		"2025-03-03,3000,0,0",
		"2025-03-04,8000,0,0,8",
	}, "\n")

	salesRepo.EXPECT().
		Upsert(gomock.Any()).
		Return(nil).
		Times(2)

	result, err := service.ImportSalesCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Equal(t, 4, result.Errors[1].Line)
}

func TestService_ImportSalesCSV_ArquivoVazio(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	result, err := service.ImportSalesCSV(strings.NewReader(""))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyCSV)
}

func TestService_ImportSalesCSV_CabecalhoInvalido(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	tests := []struct {
		name string
		csv  string
	}{
		{name: "Colunas trocadas", csv: "store_sales,date,delivery_sales,other_sales,customer_count\n"},
		{name: "Colunas faltando", csv: "date,store_sales\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.ImportSalesCSV(strings.NewReader(tt.csv))

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidCSV)
		})
	}
}

func TestService_ExportSalesCSV(t *testing.T) {
	service, salesRepo, _, _ := newServiceWithMocks(t)

	salesRepo.EXPECT().
		Fetch(2025, 3).
		Return([]*domain.SalesRecord{
			{
				Date:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				StoreSales:    10000,
				DeliverySales: 2000,
				OtherSales:    0,
				CustomerCount: 25,
			},
		}, nil)

	var buf bytes.Buffer
	err := service.ExportSalesCSV(&buf, 2025, 3)

	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,store_sales,delivery_sales,other_sales,customer_count", lines[0])
	assert.Equal(t, "2025-03-01,10000,2000,0,25", lines[1])
}

func TestService_ExportSalesCSV_MesInvalido(t *testing.T) {
	service, _, _, _ := newServiceWithMocks(t)

	var buf bytes.Buffer
	err := service.ExportSalesCSV(&buf, 2025, 0)

	assert.ErrorIs(t, err, ErrInvalidMonth)
}
