package reporting

import (
	"testing"
	"time"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func salesRecord(d time.Time, store, delivery, other, customers int64) *domain.SalesRecord {
	return &domain.SalesRecord{
		Date:          d,
		StoreSales:    store,
		DeliverySales: delivery,
		OtherSales:    other,
		ActualSales:   store + delivery + other,
		CustomerCount: customers,
	}
}

func targetRecord(d time.Time, target int64) *domain.TargetRecord {
	return &domain.TargetRecord{Date: d, TargetSales: target}
}

func TestBuildReport_JanelaInvalida(t *testing.T) {
	start := date(2025, time.March, 10)
	end := date(2025, time.March, 1)

	report, err := BuildReport(nil, nil, start, end, domain.GroupByDay)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestBuildReport_GranularidadeInvalida(t *testing.T) {
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 10)

	report, err := BuildReport(nil, nil, start, end, domain.GroupBy("week"))

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidGroupBy)
}

func TestBuildReport_JanelaVazia(t *testing.T) {
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 31)

	report, err := BuildReport(nil, nil, start, end, domain.GroupByDay)

	require.NoError(t, err)
	assert.False(t, report.HasData)
	assert.Empty(t, report.Rows)

	// A linha de total geral existe mesmo sem dados na janela.
	require.NotNil(t, report.Total)
	assert.Equal(t, TotalPeriod, report.Total.Period)
	assert.Equal(t, int64(0), report.Total.ActualSales)
	assert.Nil(t, report.Total.TargetSales)
	assert.Nil(t, report.Total.AchievementRate)
	assert.Nil(t, report.Total.UnitPrice)
}

func TestBuildReport_MetricasDerivadas(t *testing.T) {
	day := date(2025, time.March, 3) // segunda-feira
	records := []*domain.SalesRecord{
		salesRecord(day, 10000, 0, 0, 10),
	}
	targets := []*domain.TargetRecord{
		targetRecord(day, 8000),
	}

	report, err := BuildReport(records, targets, day, day, domain.GroupByDay)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.Equal(t, "2025-03-03", row.Period)
	assert.Equal(t, int64(10000), row.ActualSales)

	// Taxa de atingimento: 10000 / 8000 = 125.00%
	require.NotNil(t, row.TargetSales)
	assert.Equal(t, int64(8000), *row.TargetSales)
	require.NotNil(t, row.AchievementRate)
	assert.Equal(t, 125.00, *row.AchievementRate)

	// Preço médio por cliente: 10000 / 10 = 1000 ienes
	require.NotNil(t, row.UnitPrice)
	assert.Equal(t, int64(1000), *row.UnitPrice)

	// Dia útil comum: segunda-feira, sem folga
	require.NotNil(t, row.Date)
	assert.Equal(t, day, *row.Date)
	assert.Equal(t, "月", row.Weekday)
	assert.False(t, row.RestDay)
}

func TestBuildReport_DecomposicaoPreservada(t *testing.T) {
	day := date(2025, time.April, 10)
	records := []*domain.SalesRecord{
		salesRecord(day, 5000, 2000, 1000, 12),
		salesRecord(day.AddDate(0, 0, 1), 3000, 500, 0, 7),
	}

	report, err := BuildReport(records, nil, day, day.AddDate(0, 0, 1), domain.GroupByNone)

	require.NoError(t, err)
	total := report.Total

	assert.Equal(t, int64(8000), total.StoreSales)
	assert.Equal(t, int64(2500), total.DeliverySales)
	assert.Equal(t, int64(1000), total.OtherSales)

	// A soma dos canais sempre fecha com o total de vendas.
	assert.Equal(t, total.StoreSales+total.DeliverySales+total.OtherSales, total.ActualSales)
	assert.Equal(t, int64(11500), total.ActualSales)
	assert.Equal(t, int64(19), total.CustomerCount)
}

func TestBuildReport_RegrasDeIndefinido(t *testing.T) {
	day := date(2025, time.May, 12)

	tests := []struct {
		name     string
		records  []*domain.SalesRecord
		targets  []*domain.TargetRecord
		validate func(t *testing.T, row *domain.Aggregate)
	}{
		{
			name:    "Sem meta cadastrada a taxa fica indefinida",
			records: []*domain.SalesRecord{salesRecord(day, 4000, 0, 0, 5)},
			targets: nil,
			validate: func(t *testing.T, row *domain.Aggregate) {
				assert.Nil(t, row.TargetSales)
				assert.Nil(t, row.AchievementRate)
			},
		},
		{
			name:    "Meta zero é diferente de meta ausente",
			records: []*domain.SalesRecord{salesRecord(day, 4000, 0, 0, 5)},
			targets: []*domain.TargetRecord{targetRecord(day, 0)},
			validate: func(t *testing.T, row *domain.Aggregate) {
				// A meta aparece como zero, mas a divisão não acontece.
				require.NotNil(t, row.TargetSales)
				assert.Equal(t, int64(0), *row.TargetSales)
				assert.Nil(t, row.AchievementRate)
			},
		},
		{
			name:    "Sem clientes o preço médio fica indefinido",
			records: []*domain.SalesRecord{salesRecord(day, 4000, 0, 0, 0)},
			targets: nil,
			validate: func(t *testing.T, row *domain.Aggregate) {
				assert.Nil(t, row.UnitPrice)
			},
		},
		{
			name:    "Vendas zeradas com meta produzem taxa zero",
			records: []*domain.SalesRecord{salesRecord(day, 0, 0, 0, 0)},
			targets: []*domain.TargetRecord{targetRecord(day, 8000)},
			validate: func(t *testing.T, row *domain.Aggregate) {
				require.NotNil(t, row.AchievementRate)
				assert.Equal(t, 0.0, *row.AchievementRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := BuildReport(tt.records, tt.targets, day, day, domain.GroupByDay)

			require.NoError(t, err)
			require.Len(t, report.Rows, 1)
			tt.validate(t, report.Rows[0])
		})
	}
}

func TestBuildReport_MetaSemLancamento(t *testing.T) {
	start := date(2025, time.June, 1)
	end := date(2025, time.June, 30)

	records := []*domain.SalesRecord{
		salesRecord(date(2025, time.June, 2), 9000, 0, 0, 9),
	}
	targets := []*domain.TargetRecord{
		targetRecord(date(2025, time.June, 2), 8000),
		// Meta de um dia sem lançamento: fora das linhas, dentro do total.
		targetRecord(date(2025, time.June, 3), 7000),
	}

	report, err := BuildReport(records, targets, start, end, domain.GroupByDay)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2025-06-02", report.Rows[0].Period)

	require.NotNil(t, report.Total.TargetSales)
	assert.Equal(t, int64(15000), *report.Total.TargetSales)

	require.NotNil(t, report.Total.AchievementRate)
	assert.Equal(t, 60.0, *report.Total.AchievementRate)
}

func TestBuildReport_AgrupamentoMensal(t *testing.T) {
	start := date(2024, time.November, 1)
	end := date(2025, time.February, 28)

	records := []*domain.SalesRecord{
		salesRecord(date(2025, time.January, 15), 1000, 0, 0, 1),
		salesRecord(date(2024, time.December, 20), 2000, 0, 0, 2),
		salesRecord(date(2025, time.January, 31), 500, 0, 0, 1),
		salesRecord(date(2024, time.November, 5), 3000, 0, 0, 3),
	}

	report, err := BuildReport(records, nil, start, end, domain.GroupByMonth)

	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	// Ordem cronológica atravessando a virada do ano.
	assert.Equal(t, "2024-11", report.Rows[0].Period)
	assert.Equal(t, "2024-12", report.Rows[1].Period)
	assert.Equal(t, "2025-01", report.Rows[2].Period)

	// Janeiro soma os dois lançamentos do mês.
	assert.Equal(t, int64(1500), report.Rows[2].ActualSales)

	// Linhas não diárias não carregam data nem dia da semana.
	assert.Nil(t, report.Rows[0].Date)
	assert.Empty(t, report.Rows[0].Weekday)
}

func TestBuildReport_AgrupamentoAnual(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2025, time.December, 31)

	records := []*domain.SalesRecord{
		salesRecord(date(2025, time.March, 1), 100, 0, 0, 1),
		salesRecord(date(2024, time.March, 1), 200, 0, 0, 1),
	}

	report, err := BuildReport(records, nil, start, end, domain.GroupByYear)

	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "2024", report.Rows[0].Period)
	assert.Equal(t, "2025", report.Rows[1].Period)
}

func TestBuildReport_SemAgrupamento(t *testing.T) {
	day := date(2025, time.July, 1)
	records := []*domain.SalesRecord{
		salesRecord(day, 1000, 0, 0, 2),
		salesRecord(day.AddDate(0, 0, 1), 2000, 0, 0, 3),
	}

	report, err := BuildReport(records, nil, day, day.AddDate(0, 0, 1), domain.GroupByNone)

	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.True(t, report.HasData)
	assert.Equal(t, int64(3000), report.Total.ActualSales)
}

func TestBuildReport_DatasDuplicadasSomam(t *testing.T) {
	day := date(2025, time.August, 8)
	records := []*domain.SalesRecord{
		salesRecord(day, 1000, 0, 0, 2),
		salesRecord(day, 500, 100, 0, 1),
	}

	report, err := BuildReport(records, nil, day, day, domain.GroupByDay)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, int64(1600), report.Rows[0].ActualSales)
	assert.Equal(t, int64(3), report.Rows[0].CustomerCount)
}

func TestBuildReport_ValoresNegativosViramZero(t *testing.T) {
	day := date(2025, time.September, 10)
	records := []*domain.SalesRecord{
		salesRecord(day, 5000, -300, 0, -2),
	}
	targets := []*domain.TargetRecord{
		targetRecord(day, -1000),
	}

	report, err := BuildReport(records, targets, day, day, domain.GroupByDay)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.Equal(t, int64(5000), row.ActualSales)
	assert.Equal(t, int64(0), row.DeliverySales)
	assert.Equal(t, int64(0), row.CustomerCount)
	assert.Nil(t, row.UnitPrice)

	// Meta negativa vira zero: presente, mas sem taxa.
	require.NotNil(t, row.TargetSales)
	assert.Equal(t, int64(0), *row.TargetSales)
	assert.Nil(t, row.AchievementRate)
}

func TestBuildReport_LancamentosForaDaJanela(t *testing.T) {
	start := date(2025, time.October, 1)
	end := date(2025, time.October, 31)

	records := []*domain.SalesRecord{
		salesRecord(date(2025, time.September, 30), 9999, 0, 0, 9),
		salesRecord(date(2025, time.October, 15), 1000, 0, 0, 1),
		salesRecord(date(2025, time.November, 1), 8888, 0, 0, 8),
	}

	report, err := BuildReport(records, nil, start, end, domain.GroupByDay)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2025-10-15", report.Rows[0].Period)
	assert.Equal(t, int64(1000), report.Total.ActualSales)
}

func TestBuildReport_ArredondamentoDoPrecoMedio(t *testing.T) {
	day := date(2025, time.November, 4)

	tests := []struct {
		name      string
		store     int64
		customers int64
		expected  int64
	}{
		{name: "Divisão exata", store: 3000, customers: 3, expected: 1000},
		{name: "Fração abaixo de meio arredonda para baixo", store: 1000, customers: 3, expected: 333},
		{name: "Meio arredonda para cima", store: 2500, customers: 2, expected: 1250},
		{name: "Fração de meio exato sobe", store: 1001, customers: 2, expected: 501},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []*domain.SalesRecord{salesRecord(day, tt.store, 0, 0, tt.customers)}

			report, err := BuildReport(records, nil, day, day, domain.GroupByDay)

			require.NoError(t, err)
			require.Len(t, report.Rows, 1)
			require.NotNil(t, report.Rows[0].UnitPrice)
			assert.Equal(t, tt.expected, *report.Rows[0].UnitPrice)
		})
	}
}

func TestBuildReport_ArredondamentoDaTaxa(t *testing.T) {
	day := date(2025, time.November, 5)
	records := []*domain.SalesRecord{salesRecord(day, 1000, 0, 0, 1)}
	targets := []*domain.TargetRecord{targetRecord(day, 3000)}

	report, err := BuildReport(records, targets, day, day, domain.GroupByDay)

	require.NoError(t, err)
	require.NotNil(t, report.Rows[0].AchievementRate)

	// 1000 / 3000 = 33.333...% arredondado a duas casas.
	assert.Equal(t, 33.33, *report.Rows[0].AchievementRate)
}

func TestBuildReport_DiasDeFolga(t *testing.T) {
	tests := []struct {
		name    string
		day     time.Time
		weekday string
		restDay bool
	}{
		{name: "Sábado é folga", day: date(2025, time.March, 8), weekday: "土", restDay: true},
		{name: "Domingo é folga", day: date(2025, time.March, 9), weekday: "日", restDay: true},
		{name: "Feriado em dia de semana é folga", day: date(2025, time.February, 11), weekday: "火", restDay: true},
		{name: "Dia útil comum não é folga", day: date(2025, time.March, 5), weekday: "水", restDay: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []*domain.SalesRecord{salesRecord(tt.day, 1000, 0, 0, 1)}

			report, err := BuildReport(records, nil, tt.day, tt.day, domain.GroupByDay)

			require.NoError(t, err)
			require.Len(t, report.Rows, 1)
			assert.Equal(t, tt.weekday, report.Rows[0].Weekday)
			assert.Equal(t, tt.restDay, report.Rows[0].RestDay)
		})
	}
}

func TestBuildReport_Deterministico(t *testing.T) {
	start := date(2025, time.January, 1)
	end := date(2025, time.January, 31)

	records := []*domain.SalesRecord{
		salesRecord(date(2025, time.January, 10), 1000, 200, 0, 4),
		salesRecord(date(2025, time.January, 5), 3000, 0, 100, 6),
		salesRecord(date(2025, time.January, 20), 2000, 0, 0, 3),
	}
	targets := []*domain.TargetRecord{
		targetRecord(date(2025, time.January, 10), 1500),
		targetRecord(date(2025, time.January, 5), 2500),
	}

	first, err := BuildReport(records, targets, start, end, domain.GroupByDay)
	require.NoError(t, err)

	second, err := BuildReport(records, targets, start, end, domain.GroupByDay)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMergeWithTargets(t *testing.T) {
	day1 := date(2025, time.April, 1)
	day2 := date(2025, time.April, 2)

	salesByDate := map[string]*domain.SalesRecord{
		"2025-04-01": salesRecord(day1, 5000, 0, 0, 5),
		"2025-04-02": salesRecord(day2, 3000, 0, 0, 3),
	}
	targetsByDate := map[string]*domain.TargetRecord{
		"2025-04-01": targetRecord(day1, 4000),
		// Meta sem lançamento correspondente fica de fora do resultado.
		"2025-04-03": targetRecord(date(2025, time.April, 3), 9000),
	}

	rows := MergeWithTargets(salesByDate, targetsByDate)

	require.Len(t, rows, 2)
	assert.Equal(t, "2025-04-01", rows[0].Period)
	assert.Equal(t, "2025-04-02", rows[1].Period)

	require.NotNil(t, rows[0].TargetSales)
	assert.Equal(t, int64(4000), *rows[0].TargetSales)
	require.NotNil(t, rows[0].AchievementRate)
	assert.Equal(t, 125.0, *rows[0].AchievementRate)

	assert.Nil(t, rows[1].TargetSales)
	assert.Nil(t, rows[1].AchievementRate)
}
