package domain

import (
	"time"
)

// TargetRecord representa a meta de vendas de uma data específica.
// Assim como SalesRecord, existe no máximo um registro por data e o ano e
// mês são desnormalizados a partir da data para facilitar os filtros.
type TargetRecord struct {
	ID          int64     `json:"id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Date        time.Time `json:"date"`
	TargetSales int64     `json:"target_sales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize recalcula os campos desnormalizados antes da gravação.
func (t *TargetRecord) Normalize() {
	if t.TargetSales < 0 {
		t.TargetSales = 0
	}
	t.Year = t.Date.Year()
	t.Month = int(t.Date.Month())
}

// TargetRecordRequest é o payload de criação/atualização de uma meta.
type TargetRecordRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD
	TargetSales int64  `json:"target_sales"`
}

// MinimumTarget é o piso de vendas de um mês do calendário (1-12),
// independente do ano. Usado pelo dashboard para sinalizar meses abaixo
// do mínimo operacional.
type MinimumTarget struct {
	Month     int       `json:"month"`
	MinSales  int64     `json:"min_sales"`
	UpdatedAt time.Time `json:"updated_at"`
}
