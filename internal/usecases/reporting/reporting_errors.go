package reporting

import (
	"errors"
)

// Erros de contrato do engine de agregação. Problemas de qualidade de
// dados nunca geram erro (são absorvidos por coerção a zero); estes aqui
// indicam chamada incorreta e são devolvidos ao chamador sem correção
// silenciosa.
var (
	ErrInvalidWindow  = errors.New("janela inválida: data inicial posterior à data final")
	ErrInvalidGroupBy = errors.New("granularidade de agrupamento inválida")
)
