package reporting

import (
	"time"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
)

// Reporter define a interface de geração de relatórios de vendas
type Reporter interface {
	// SummaryReport agrega lançamentos e metas de uma janela de datas na
	// granularidade pedida (day, month, year ou none)
	SummaryReport(start, end time.Time, groupBy domain.GroupBy) (*domain.Report, error)

	// MonthlyReport gera o relatório diário de um mês específico
	MonthlyReport(year, month int) (*domain.Report, error)

	// AnnualReport calcula o atingimento do ano considerando as metas
	// somente até a última data com lançamento
	AnnualReport(year int) (*domain.AnnualReport, error)

	// MonthHistory devolve o snapshot persistido de um mês fechado
	MonthHistory(period string) (*domain.MonthlySummary, error)

	// GetAvailablePeriods retorna os períodos mensais com snapshot disponível
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

// SummarySyncer define a interface de sincronização dos snapshots mensais
type SummarySyncer interface {
	// SyncMonth recalcula e persiste o snapshot de um mês específico
	SyncMonth(year, month int) error

	// SyncClosedMonths recalcula os snapshots dos últimos meses fechados
	SyncClosedMonths(monthsBack int) error
}
