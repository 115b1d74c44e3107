package domain

import (
	"time"
)

// GroupBy define a granularidade de agrupamento de um relatório.
type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByMonth GroupBy = "month"
	GroupByYear  GroupBy = "year"
	GroupByNone  GroupBy = "none"
)

// Valid informa se a granularidade é uma das suportadas.
func (g GroupBy) Valid() bool {
	switch g {
	case GroupByDay, GroupByMonth, GroupByYear, GroupByNone:
		return true
	}
	return false
}

// Aggregate é uma linha de relatório: a soma de um grupo de lançamentos
// (um dia, um mês, um ano ou a janela inteira).
//
// Os campos derivados usam ponteiros para distinguir "indefinido" de
// "zero": TargetSales nil significa "sem meta cadastrada" (diferente de
// meta igual a zero), AchievementRate nil significa meta ausente ou zero
// e UnitPrice nil significa nenhum cliente no grupo. Essa distinção é
// necessária para a exibição correta da taxa de atingimento.
type Aggregate struct {
	// Period identifica o grupo: "2025-01-02" (dia), "2025-01" (mês),
	// "2025" (ano) ou "total" para a linha de total geral.
	Period string `json:"period"`

	StoreSales    int64 `json:"store_sales"`
	DeliverySales int64 `json:"delivery_sales"`
	OtherSales    int64 `json:"other_sales"`
	ActualSales   int64 `json:"actual_sales"`
	CustomerCount int64 `json:"customer_count"`

	TargetSales     *int64   `json:"target_sales,omitempty"`
	AchievementRate *float64 `json:"achievement_rate,omitempty"` // percentual, 2 casas
	UnitPrice       *int64   `json:"unit_price,omitempty"`       // ienes inteiros

	// Campos presentes apenas na granularidade diária.
	Date    *time.Time `json:"date,omitempty"`
	Weekday string     `json:"weekday,omitempty"`
	RestDay bool       `json:"rest_day,omitempty"` // fim de semana ou feriado
}

// Report é o resultado de uma agregação: as linhas de detalhe por grupo
// e a linha de total geral, sempre presente mesmo sem dados na janela.
type Report struct {
	Rows    []*Aggregate `json:"rows"`
	Total   *Aggregate   `json:"total"`
	HasData bool         `json:"has_data"`
	GroupBy GroupBy      `json:"group_by"`
	Start   time.Time    `json:"start_date"`
	End     time.Time    `json:"end_date"`
}

// AnnualReport é o resumo exibido no topo do dashboard: atingimento do
// ano corrente considerando metas até a última data com lançamento.
type AnnualReport struct {
	Year            int      `json:"year"`
	ActualTotal     int64    `json:"actual_total"`
	TargetTotal     *int64   `json:"target_total,omitempty"`
	AchievementRate *float64 `json:"achievement_rate,omitempty"`
	LastEntryDate   *string  `json:"last_entry_date,omitempty"`
	HasData         bool     `json:"has_data"`
}

// MonthlySummary é o snapshot persistido de um mês fechado, mantido pelo
// agendador de sincronização mensal. Período no formato mm-yyyy.
type MonthlySummary struct {
	ID        int64      `json:"id"`
	Period    string     `json:"period"`
	Summary   *Aggregate `json:"summary"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AvailablePeriods lista os períodos mensais com snapshot disponível.
type AvailablePeriods struct {
	Periods []string `json:"periods"` // mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
