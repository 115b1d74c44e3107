package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/halsbagel/sales-dashboard-api/infrastructure/repository"
	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa as interfaces Reporter e SummarySyncer
type Service struct {
	salesRepository          repository.SalesRepository
	targetRepository         repository.TargetRepository
	monthlySummaryRepository repository.MonthlySummaryRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	salesRepo repository.SalesRepository,
	targetRepo repository.TargetRepository,
	summaryRepo repository.MonthlySummaryRepository,
) *Service {
	return &Service{
		salesRepository:          salesRepo,
		targetRepository:         targetRepo,
		monthlySummaryRepository: summaryRepo,
	}
}

// SummaryReport agrega os lançamentos e as metas da janela pedida. A
// agregação é sempre recalculada a partir dos dados persistidos; os
// snapshots mensais servem apenas ao histórico.
func (s *Service) SummaryReport(start, end time.Time, groupBy domain.GroupBy) (*domain.Report, error) {
	start = utils.TruncateToDay(start)
	end = utils.TruncateToDay(end)

	// A validação da janela acontece no engine, mas antecipar aqui evita
	// duas idas ao banco que seriam descartadas.
	if start.After(end) {
		return nil, ErrInvalidWindow
	}

	records, err := s.salesRepository.FetchRange(start, end)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start_date": start.Format(time.DateOnly),
			"end_date":   end.Format(time.DateOnly),
		}).Error("Erro ao buscar lançamentos de vendas para o relatório")
		return nil, fmt.Errorf("erro ao buscar lançamentos de vendas: %w", err)
	}

	targets, err := s.targetRepository.FetchRange(start, end)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start_date": start.Format(time.DateOnly),
			"end_date":   end.Format(time.DateOnly),
		}).Error("Erro ao buscar metas para o relatório")
		return nil, fmt.Errorf("erro ao buscar metas: %w", err)
	}

	return BuildReport(records, targets, start, end, groupBy)
}

// MonthlyReport gera o relatório diário de um mês específico
func (s *Service) MonthlyReport(year, month int) (*domain.Report, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("mês inválido: %d", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return s.SummaryReport(start, end, domain.GroupByDay)
}

// AnnualReport calcula o atingimento do ano corrente. As metas entram na
// soma somente até a última data com lançamento, para que os meses ainda
// não trabalhados não derrubem a taxa.
func (s *Service) AnnualReport(year int) (*domain.AnnualReport, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	records, err := s.salesRepository.FetchRange(start, end)
	if err != nil {
		logrus.WithError(err).WithField("year", year).
			Error("Erro ao buscar lançamentos do ano")
		return nil, fmt.Errorf("erro ao buscar lançamentos do ano: %w", err)
	}

	report := &domain.AnnualReport{Year: year}

	var lastEntry time.Time
	for _, rec := range records {
		if rec == nil {
			continue
		}

		report.ActualTotal += rec.ActualSales
		if rec.Date.After(lastEntry) {
			lastEntry = rec.Date
		}
	}

	if lastEntry.IsZero() {
		return report, nil
	}

	report.HasData = true
	lastEntryStr := lastEntry.Format(time.DateOnly)
	report.LastEntryDate = &lastEntryStr

	targets, err := s.targetRepository.FetchRange(start, utils.TruncateToDay(lastEntry))
	if err != nil {
		logrus.WithError(err).WithField("year", year).
			Error("Erro ao buscar metas do ano")
		return nil, fmt.Errorf("erro ao buscar metas do ano: %w", err)
	}

	if len(targets) > 0 {
		var targetTotal int64
		for _, tgt := range targets {
			if tgt == nil {
				continue
			}
			targetTotal += tgt.TargetSales
		}

		report.TargetTotal = &targetTotal

		if targetTotal > 0 {
			rate := utils.RoundWithTwoDecimalPlace(float64(report.ActualTotal) * 100 / float64(targetTotal))
			report.AchievementRate = &rate
		}
	}

	return report, nil
}

// MonthHistory devolve o snapshot persistido de um mês fechado. Meses
// sem snapshot retornam nil sem erro; cabe ao chamador decidir como
// apresentar a ausência.
func (s *Service) MonthHistory(period string) (*domain.MonthlySummary, error) {
	t, err := time.Parse("01-2006", period)
	if err != nil {
		return nil, fmt.Errorf("período inválido: %s", period)
	}

	summary, err := s.monthlySummaryRepository.GetByPeriod(t)
	if err != nil {
		logrus.WithError(err).WithField("period", period).
			Error("Erro ao buscar snapshot mensal")
		return nil, fmt.Errorf("erro ao buscar snapshot mensal: %w", err)
	}

	return summary, nil
}

// GetAvailablePeriods retorna os períodos (meses e anos) disponíveis na
// tabela de snapshots mensais
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.monthlySummaryRepository.GetAllPeriods()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos de snapshots mensais: %w", err)
	}

	yearMap := make(map[string]bool)
	monthMap := make(map[string]bool)

	// Extrair ano e mês de cada período (formato mm-yyyy)
	for _, period := range periods {
		if len(period) == 7 {
			monthMap[period[:2]] = true
			yearMap[period[3:]] = true
		}
	}

	years := make([]string, 0, len(yearMap))
	for year := range yearMap {
		years = append(years, year)
	}

	months := make([]string, 0, len(monthMap))
	for month := range monthMap {
		months = append(months, month)
	}

	sort.Strings(periods)
	sort.Strings(years)
	sort.Strings(months)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}

// SyncMonth recalcula e persiste o snapshot de um mês específico. Meses
// sem nenhum lançamento não geram snapshot.
func (s *Service) SyncMonth(year, month int) error {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	report, err := s.SummaryReport(start, end, domain.GroupByNone)
	if err != nil {
		return fmt.Errorf("erro ao agregar o mês %02d-%04d: %w", month, year, err)
	}

	if !report.HasData {
		logrus.WithFields(logrus.Fields{
			"year":  year,
			"month": month,
		}).Info("Mês sem lançamentos, snapshot não gerado")
		return nil
	}

	summary := &domain.MonthlySummary{
		Period:  fmt.Sprintf("%02d-%04d", month, year),
		Summary: report.Total,
	}

	if err := s.monthlySummaryRepository.SaveOrUpdate(summary); err != nil {
		return fmt.Errorf("erro ao salvar snapshot do mês %s: %w", summary.Period, err)
	}

	logrus.WithField("period", summary.Period).Info("Snapshot mensal sincronizado")

	return nil
}

// SyncClosedMonths recalcula os snapshots dos últimos monthsBack meses
// fechados, do mais recente para o mais antigo. O mês corrente fica de
// fora: snapshot é coisa de mês encerrado.
func (s *Service) SyncClosedMonths(monthsBack int) error {
	if monthsBack < 1 {
		monthsBack = 1
	}

	now := time.Now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var firstErr error
	for i := 1; i <= monthsBack; i++ {
		month := current.AddDate(0, -i, 0)

		if err := s.SyncMonth(month.Year(), int(month.Month())); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"year":  month.Year(),
				"month": int(month.Month()),
			}).Error("Erro ao sincronizar snapshot mensal")

			// Continua para os demais meses e reporta o primeiro erro.
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
