package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/reporting"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/halsbagel/sales-dashboard-api/pkg/apiErrors"
)

func TestGetSummaryReport(t *testing.T) {
	newReport := func(groupBy domain.GroupBy) *domain.Report {
		total := int64(10000)
		return &domain.Report{
			Rows: []*domain.Aggregate{
				{Period: "2025-03", ActualSales: total},
			},
			Total:   &domain.Aggregate{Period: "total", ActualSales: total},
			HasData: true,
			GroupBy: groupBy,
		}
	}

	t.Run("deve retornar o relatório da janela pedida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		service.EXPECT().
			SummaryReport(start, end, domain.GroupByMonth).
			Return(newReport(domain.GroupByMonth), nil)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reports/summary?start_date=2025-03-01&end_date=2025-03-31&group_by=month", nil)
		rec := httptest.NewRecorder()

		GetSummaryReport(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var report domain.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.True(t, report.HasData)
		require.Len(t, report.Rows, 1)
		assert.Equal(t, "2025-03", report.Rows[0].Period)
		require.NotNil(t, report.Total)
		assert.Equal(t, int64(10000), report.Total.ActualSales)
	})

	t.Run("deve usar granularidade diária quando group_by for omitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().
			SummaryReport(gomock.Any(), gomock.Any(), domain.GroupByDay).
			Return(newReport(domain.GroupByDay), nil)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reports/summary?start_date=2025-03-01&end_date=2025-03-31", nil)
		rec := httptest.NewRecorder()

		GetSummaryReport(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("deve responder 400 com código próprio quando a janela for invertida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().
			SummaryReport(gomock.Any(), gomock.Any(), domain.GroupByDay).
			Return(nil, reporting.ErrInvalidWindow)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reports/summary?start_date=2025-03-31&end_date=2025-03-01", nil)
		rec := httptest.NewRecorder()

		GetSummaryReport(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidWindow, apiErr.Code)
	})

	t.Run("deve responder 400 quando group_by for desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().
			SummaryReport(gomock.Any(), gomock.Any(), domain.GroupBy("week")).
			Return(nil, reporting.ErrInvalidGroupBy)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reports/summary?start_date=2025-03-01&end_date=2025-03-31&group_by=week", nil)
		rec := httptest.NewRecorder()

		GetSummaryReport(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidGroupBy, apiErr.Code)
	})

	t.Run("deve exigir start_date e end_date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary?start_date=2025-03-01", nil)
		rec := httptest.NewRecorder()

		GetSummaryReport(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
	})

	t.Run("deve rejeitar datas malformadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		req := httptest.NewRequest(http.MethodGet,
			"/v1/reports/summary?start_date=01/03/2025&end_date=2025-03-31", nil)
		rec := httptest.NewRecorder()

		GetSummaryReport(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
	})
}

func TestGetMonthHistory(t *testing.T) {
	t.Run("deve retornar o snapshot do período", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().
			MonthHistory("03-2025").
			Return(&domain.MonthlySummary{
				Period:  "03-2025",
				Summary: &domain.Aggregate{Period: "total", ActualSales: 55000},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/history?period=03-2025", nil)
		rec := httptest.NewRecorder()

		GetMonthHistory(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var summary domain.MonthlySummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, "03-2025", summary.Period)
		require.NotNil(t, summary.Summary)
		assert.Equal(t, int64(55000), summary.Summary.ActualSales)
	})

	t.Run("deve responder 404 quando não houver snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockReporter(ctrl)

		service.EXPECT().MonthHistory("01-2020").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/history?period=01-2020", nil)
		rec := httptest.NewRecorder()

		GetMonthHistory(service).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrRecordNotFound, apiErr.Code)
	})
}
