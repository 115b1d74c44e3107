package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CoerceInt converte de forma tolerante um valor vindo de fora (driver de
// banco, CSV, JSON) para int64. Valores não numéricos, nulos ou negativos
// viram 0 em vez de erro: um registro malformado não pode derrubar o
// relatório inteiro.
func CoerceInt(v any) int64 {
	var n int64

	switch t := v.(type) {
	case nil:
		return 0
	case int64:
		n = t
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case float64:
		n = int64(t)
	case float32:
		n = int64(t)
	case []byte:
		n = parseLenientInt(string(t))
	case string:
		n = parseLenientInt(t)
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return n
}

// ParseLenientInt interpreta números digitados por pessoas: aceita
// separador de milhar, espaços e sufixos como "円" ou "人" usados nas
// planilhas da loja. Falha de parse vira 0.
func ParseLenientInt(s string) int64 {
	return parseLenientInt(s)
}

func parseLenientInt(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "円")
	s = strings.TrimSuffix(s, "人")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	// Algumas planilhas exportam inteiros como "1200.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}

	return 0
}
