package domain

// ImportRowError descreve uma linha de CSV rejeitada durante a
// importação. A linha 1 é o cabeçalho.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult é o resultado de uma importação de CSV. Linhas rejeitadas
// não interrompem o lote: ficam listadas em Errors e as demais seguem.
type ImportResult struct {
	BatchID  string           `json:"batch_id"`
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
