package reporting

import (
	"testing"
	"time"

	"github.com/halsbagel/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_SummaryReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	start := date(2025, time.March, 1)
	end := date(2025, time.March, 31)

	mockSalesRepo.EXPECT().
		FetchRange(start, end).
		Return([]*domain.SalesRecord{
			salesRecord(date(2025, time.March, 3), 10000, 0, 0, 10),
		}, nil)

	mockTargetRepo.EXPECT().
		FetchRange(start, end).
		Return([]*domain.TargetRecord{
			targetRecord(date(2025, time.March, 3), 8000),
		}, nil)

	report, err := service.SummaryReport(start, end, domain.GroupByDay)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2025-03-03", report.Rows[0].Period)
	require.NotNil(t, report.Rows[0].AchievementRate)
	assert.Equal(t, 125.00, *report.Rows[0].AchievementRate)
}

func TestService_SummaryReport_JanelaInvalidaNaoConsultaBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	// Nenhuma expectativa nos mocks: a janela inválida barra antes do banco.
	report, err := service.SummaryReport(
		date(2025, time.March, 10),
		date(2025, time.March, 1),
		domain.GroupByDay,
	)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestService_SummaryReport_ErroDeRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	start := date(2025, time.March, 1)
	end := date(2025, time.March, 31)

	mockSalesRepo.EXPECT().
		FetchRange(start, end).
		Return(nil, assert.AnError)

	report, err := service.SummaryReport(start, end, domain.GroupByDay)

	assert.Nil(t, report)
	assert.Error(t, err)
}

func TestService_AnnualReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	yearStart := date(2025, time.January, 1)
	yearEnd := date(2025, time.December, 31)
	lastEntry := date(2025, time.June, 15)

	mockSalesRepo.EXPECT().
		FetchRange(yearStart, yearEnd).
		Return([]*domain.SalesRecord{
			salesRecord(date(2025, time.February, 10), 40000, 0, 0, 40),
			salesRecord(lastEntry, 20000, 0, 0, 20),
		}, nil)

	// As metas só entram até a última data com lançamento.
	mockTargetRepo.EXPECT().
		FetchRange(yearStart, lastEntry).
		Return([]*domain.TargetRecord{
			targetRecord(date(2025, time.February, 10), 30000),
			targetRecord(lastEntry, 18000),
		}, nil)

	report, err := service.AnnualReport(2025)

	require.NoError(t, err)
	assert.True(t, report.HasData)
	assert.Equal(t, int64(60000), report.ActualTotal)

	require.NotNil(t, report.TargetTotal)
	assert.Equal(t, int64(48000), *report.TargetTotal)

	require.NotNil(t, report.AchievementRate)
	assert.Equal(t, 125.00, *report.AchievementRate)

	require.NotNil(t, report.LastEntryDate)
	assert.Equal(t, "2025-06-15", *report.LastEntryDate)
}

func TestService_AnnualReport_AnoSemLancamentos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	mockSalesRepo.EXPECT().
		FetchRange(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesRecord{}, nil)

	report, err := service.AnnualReport(2030)

	require.NoError(t, err)
	assert.False(t, report.HasData)
	assert.Equal(t, int64(0), report.ActualTotal)
	assert.Nil(t, report.TargetTotal)
	assert.Nil(t, report.AchievementRate)
	assert.Nil(t, report.LastEntryDate)
}

func TestService_MonthHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	expected := &domain.MonthlySummary{
		Period:  "05-2025",
		Summary: &domain.Aggregate{Period: "total", ActualSales: 120000},
	}

	mockSummaryRepo.EXPECT().
		GetByPeriod(gomock.Any()).
		Return(expected, nil)

	summary, err := service.MonthHistory("05-2025")

	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}

func TestService_MonthHistory_PeriodoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(
		mocks.NewMockSalesRepository(ctrl),
		mocks.NewMockTargetRepository(ctrl),
		mocks.NewMockMonthlySummaryRepository(ctrl),
	)

	summary, err := service.MonthHistory("2025/05")

	assert.Nil(t, summary)
	assert.Error(t, err)
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)
	service := NewService(
		mocks.NewMockSalesRepository(ctrl),
		mocks.NewMockTargetRepository(ctrl),
		mockSummaryRepo,
	)

	mockSummaryRepo.EXPECT().
		GetAllPeriods().
		Return([]string{"12-2024", "01-2025", "02-2025"}, nil)

	periods, err := service.GetAvailablePeriods()

	require.NoError(t, err)
	assert.Equal(t, []string{"01-2025", "02-2025", "12-2024"}, periods.Periods)
	assert.Equal(t, []string{"2024", "2025"}, periods.Years)
	assert.Equal(t, []string{"01", "02", "12"}, periods.Months)
}

func TestService_SyncMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	start := date(2025, time.April, 1)
	end := date(2025, time.April, 30)

	mockSalesRepo.EXPECT().
		FetchRange(start, end).
		Return([]*domain.SalesRecord{
			salesRecord(date(2025, time.April, 10), 50000, 5000, 0, 50),
		}, nil)

	mockTargetRepo.EXPECT().
		FetchRange(start, end).
		Return([]*domain.TargetRecord{
			targetRecord(date(2025, time.April, 10), 44000),
		}, nil)

	mockSummaryRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(summary *domain.MonthlySummary) error {
			assert.Equal(t, "04-2025", summary.Period)
			require.NotNil(t, summary.Summary)
			assert.Equal(t, int64(55000), summary.Summary.ActualSales)
			require.NotNil(t, summary.Summary.AchievementRate)
			assert.Equal(t, 125.00, *summary.Summary.AchievementRate)
			return nil
		})

	err := service.SyncMonth(2025, 4)

	assert.NoError(t, err)
}

func TestService_SyncMonth_MesSemLancamentos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSalesRepo := mocks.NewMockSalesRepository(ctrl)
	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockSummaryRepo := mocks.NewMockMonthlySummaryRepository(ctrl)

	service := NewService(mockSalesRepo, mockTargetRepo, mockSummaryRepo)

	mockSalesRepo.EXPECT().
		FetchRange(gomock.Any(), gomock.Any()).
		Return([]*domain.SalesRecord{}, nil)

	mockTargetRepo.EXPECT().
		FetchRange(gomock.Any(), gomock.Any()).
		Return([]*domain.TargetRecord{}, nil)

	// Sem lançamentos nada é persistido.
	err := service.SyncMonth(2025, 4)

	assert.NoError(t, err)
}
