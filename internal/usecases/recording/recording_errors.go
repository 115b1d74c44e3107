package recording

import "errors"

var (
	ErrRecordNotFound = errors.New("lançamento não encontrado")
	ErrInvalidDate    = errors.New("data inválida")
	ErrInvalidMonth   = errors.New("mês inválido")
	ErrEmptyCSV       = errors.New("arquivo CSV vazio")
	ErrInvalidCSV     = errors.New("cabeçalho do CSV inválido")
)
