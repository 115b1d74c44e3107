package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/pkg/calendar"
	"github.com/halsbagel/sales-dashboard-api/pkg/utils"
)

// TotalPeriod é o identificador fixo da linha de total geral.
const TotalPeriod = "total"

var weekdayKanji = map[time.Weekday]string{
	time.Sunday:    "日",
	time.Monday:    "月",
	time.Tuesday:   "火",
	time.Wednesday: "水",
	time.Thursday:  "木",
	time.Friday:    "金",
	time.Saturday:  "土",
}

// accumulator soma os lançamentos de um grupo antes do cálculo das
// métricas derivadas. As somas ficam exatas (ienes inteiros); o
// arredondamento acontece uma única vez, no fechamento do grupo.
type accumulator struct {
	storeSales    int64
	deliverySales int64
	otherSales    int64
	customerCount int64
	targetSales   int64
	hasTarget     bool
	hasSales      bool
	firstDate     time.Time
}

// BuildReport agrega lançamentos e metas de uma janela [start, end] na
// granularidade pedida. É uma função pura: não faz I/O e chamadas
// repetidas com as mesmas entradas produzem o mesmo resultado.
//
// Regras de agregação:
//   - grupos sem nenhum lançamento são omitidos das linhas de detalhe
//     (nunca sintetizados como linha zerada);
//   - a linha de total geral existe sempre, mesmo com janela vazia;
//   - meta ausente é diferente de meta zero: sem linha de meta no grupo,
//     TargetSales fica nil e a taxa de atingimento indefinida;
//   - a taxa de atingimento só é calculada com meta somada > 0
//     (arredondada a 2 casas) e o preço médio por cliente só com clientes
//     somados > 0 (arredondado para o iene inteiro mais próximo, meio
//     para cima);
//   - metas em datas sem lançamento não geram linha de detalhe, mas
//     entram na soma de metas do total geral.
//
// Valores negativos são tratados como 0, espelhando a coerção tolerante
// aplicada nas bordas (scan do banco e importação de CSV). A única
// condição de erro é janela inválida (start > end), que é violação de
// contrato do chamador e nunca é corrigida silenciosamente.
func BuildReport(
	records []*domain.SalesRecord,
	targets []*domain.TargetRecord,
	start, end time.Time,
	groupBy domain.GroupBy,
) (*domain.Report, error) {
	start = utils.TruncateToDay(start)
	end = utils.TruncateToDay(end)

	if start.After(end) {
		return nil, ErrInvalidWindow
	}

	if !groupBy.Valid() {
		return nil, ErrInvalidGroupBy
	}

	groups := make(map[string]*accumulator)
	grand := &accumulator{}

	group := func(key string) *accumulator {
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		return acc
	}

	for _, rec := range records {
		if rec == nil || !inWindow(rec.Date, start, end) {
			continue
		}

		// Datas duplicadas vindas do armazenamento somam como se cada
		// registro contribuísse de forma independente; deduplicação é
		// responsabilidade do Record Store, não do engine.
		key, first := periodKey(rec.Date, groupBy)
		acc := group(key)
		acc.addSales(rec, first)
		grand.addSales(rec, first)
	}

	for _, tgt := range targets {
		if tgt == nil || !inWindow(tgt.Date, start, end) {
			continue
		}

		key, first := periodKey(tgt.Date, groupBy)
		acc := group(key)
		acc.addTarget(tgt, first)
		grand.addTarget(tgt, first)
	}

	rows := make([]*domain.Aggregate, 0, len(groups))
	if groupBy != domain.GroupByNone {
		for key, acc := range groups {
			// Grupos que só têm meta não viram linha de detalhe.
			if !acc.hasSales {
				continue
			}
			rows = append(rows, acc.finish(key, groupBy))
		}

		// Chaves zero-padded ordenam lexicograficamente em ordem
		// cronológica (dias ascendentes, meses 01-12).
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Period < rows[j].Period
		})
	}

	return &domain.Report{
		Rows:    rows,
		Total:   grand.finish(TotalPeriod, domain.GroupByNone),
		HasData: grand.hasSales,
		GroupBy: groupBy,
		Start:   start,
		End:     end,
	}, nil
}

// MergeWithTargets faz o left join de lançamentos sobre metas por data:
// toda data com lançamento aparece no resultado, com a meta anexada
// quando existir. Datas que têm meta mas não têm lançamento ficam de
// fora — elas só contribuem para o total geral, que é calculado pelo
// BuildReport.
func MergeWithTargets(
	salesByDate map[string]*domain.SalesRecord,
	targetsByDate map[string]*domain.TargetRecord,
) []*domain.Aggregate {
	rows := make([]*domain.Aggregate, 0, len(salesByDate))

	for key, rec := range salesByDate {
		if rec == nil {
			continue
		}

		acc := &accumulator{}
		acc.addSales(rec, rec.Date)
		if tgt, ok := targetsByDate[key]; ok && tgt != nil {
			acc.addTarget(tgt, tgt.Date)
		}

		rows = append(rows, acc.finish(key, domain.GroupByDay))
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Period < rows[j].Period
	})

	return rows
}

func (a *accumulator) addSales(rec *domain.SalesRecord, date time.Time) {
	a.storeSales += clamp(rec.StoreSales)
	a.deliverySales += clamp(rec.DeliverySales)
	a.otherSales += clamp(rec.OtherSales)
	a.customerCount += clamp(rec.CustomerCount)

	if !a.hasSales {
		a.firstDate = date
	}
	a.hasSales = true
}

func (a *accumulator) addTarget(tgt *domain.TargetRecord, date time.Time) {
	a.targetSales += clamp(tgt.TargetSales)
	a.hasTarget = true

	if !a.hasSales && a.firstDate.IsZero() {
		a.firstDate = date
	}
}

// finish fecha o grupo: calcula as métricas derivadas com os devidos
// arredondamentos e a distinção indefinido-vs-zero.
func (a *accumulator) finish(period string, groupBy domain.GroupBy) *domain.Aggregate {
	agg := &domain.Aggregate{
		Period:        period,
		StoreSales:    a.storeSales,
		DeliverySales: a.deliverySales,
		OtherSales:    a.otherSales,
		ActualSales:   a.storeSales + a.deliverySales + a.otherSales,
		CustomerCount: a.customerCount,
	}

	if a.hasTarget {
		target := a.targetSales
		agg.TargetSales = &target

		if target > 0 {
			rate := utils.RoundWithTwoDecimalPlace(float64(agg.ActualSales) * 100 / float64(target))
			agg.AchievementRate = &rate
		}
	}

	if a.customerCount > 0 {
		unit := int64(math.Round(float64(a.storeSales) / float64(a.customerCount)))
		agg.UnitPrice = &unit
	}

	if groupBy == domain.GroupByDay && a.hasSales {
		date := utils.TruncateToDay(a.firstDate)
		agg.Date = &date
		agg.Weekday = weekdayKanji[date.Weekday()]
		agg.RestDay = calendar.IsRestDay(date)
	}

	return agg
}

// periodKey devolve a chave de agrupamento da data na granularidade
// pedida e o primeiro instante do período (usado nas linhas diárias).
func periodKey(t time.Time, groupBy domain.GroupBy) (string, time.Time) {
	switch groupBy {
	case domain.GroupByDay:
		return t.Format(time.DateOnly), utils.TruncateToDay(t)
	case domain.GroupByMonth:
		return t.Format("2006-01"), time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case domain.GroupByYear:
		return t.Format("2006"), time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	default:
		return TotalPeriod, utils.TruncateToDay(t)
	}
}

func inWindow(t, start, end time.Time) bool {
	day := utils.TruncateToDay(t)
	return !day.Before(start) && !day.After(end)
}

func clamp(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
