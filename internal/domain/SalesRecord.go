package domain

import (
	"time"
)

// SalesRecord representa o lançamento de vendas de um dia da loja.
// Existe no máximo um registro por data; gravações substituem todos os
// campos daquela data (upsert por data, last-write-wins).
type SalesRecord struct {
	ID            int64     `json:"id"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Date          time.Time `json:"date"`
	StoreSales    int64     `json:"store_sales"`
	DeliverySales int64     `json:"delivery_sales"`
	OtherSales    int64     `json:"other_sales"`
	ActualSales   int64     `json:"actual_sales"`
	CustomerCount int64     `json:"customer_count"`
	UnitPrice     int64     `json:"unit_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Normalize recalcula os campos derivados antes da gravação.
// ActualSales é sempre a soma das três origens de venda e o preço médio
// por cliente usa a venda da loja, não a venda total (convenção mais
// recente do dashboard).
func (s *SalesRecord) Normalize() {
	if s.StoreSales < 0 {
		s.StoreSales = 0
	}
	if s.DeliverySales < 0 {
		s.DeliverySales = 0
	}
	if s.OtherSales < 0 {
		s.OtherSales = 0
	}
	if s.CustomerCount < 0 {
		s.CustomerCount = 0
	}

	s.ActualSales = s.StoreSales + s.DeliverySales + s.OtherSales

	s.UnitPrice = 0
	if s.CustomerCount > 0 {
		s.UnitPrice = int64(float64(s.StoreSales)/float64(s.CustomerCount) + 0.5)
	}

	s.Year = s.Date.Year()
	s.Month = int(s.Date.Month())
}

// SalesRecordRequest é o payload de criação/atualização de um lançamento.
// Os valores monetários são ienes inteiros.
type SalesRecordRequest struct {
	Date          string `json:"date"` // YYYY-MM-DD
	StoreSales    int64  `json:"store_sales"`
	DeliverySales int64  `json:"delivery_sales"`
	OtherSales    int64  `json:"other_sales"`
	CustomerCount int64  `json:"customer_count"`
}
