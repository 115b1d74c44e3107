package recording

import (
	"io"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
)

// Recorder define a interface de manutenção dos lançamentos diários de
// vendas e das metas
type Recorder interface {
	// UpsertSalesRecord grava o lançamento de um dia, substituindo o
	// registro existente daquela data (last-write-wins)
	UpsertSalesRecord(req *domain.SalesRecordRequest) (*domain.SalesRecord, error)

	// ListSalesRecords lista os lançamentos de um mês específico
	ListSalesRecords(year, month int) ([]*domain.SalesRecord, error)

	// GetSalesRecord busca o lançamento de uma data específica
	GetSalesRecord(date string) (*domain.SalesRecord, error)

	// DeleteSalesRecord remove o lançamento de uma data específica
	DeleteSalesRecord(date string) error

	// UpsertTargetRecord grava a meta de um dia, substituindo a existente
	UpsertTargetRecord(req *domain.TargetRecordRequest) (*domain.TargetRecord, error)

	// ListTargetRecords lista as metas de um mês específico
	ListTargetRecords(year, month int) ([]*domain.TargetRecord, error)

	// DeleteTargetRecord remove a meta de uma data específica
	DeleteTargetRecord(date string) error

	// ListMinimumTargets lista os pisos mensais de vendas
	ListMinimumTargets() ([]*domain.MinimumTarget, error)

	// UpsertMinimumTarget grava o piso de vendas de um mês do calendário
	UpsertMinimumTarget(month int, minSales int64) (*domain.MinimumTarget, error)

	// ImportSalesCSV importa lançamentos de um arquivo CSV, linha a linha,
	// sem interromper o lote em linhas malformadas
	ImportSalesCSV(r io.Reader) (*domain.ImportResult, error)

	// ExportSalesCSV exporta os lançamentos de um mês em CSV
	ExportSalesCSV(w io.Writer, year, month int) error
}
