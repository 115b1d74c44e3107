// Package calendar determina dias de descanso da loja: fins de semana e
// feriados nacionais japoneses. O cálculo é uma função pura da data, sem
// tabela externa, cobrindo as regras vigentes desde a reforma de 2000
// (Happy Monday) e os ajustes de 2020 (Dia do Esporte, Dia da Montanha).
package calendar

import (
	"math"
	"time"
)

// IsRestDay informa se a data cai em fim de semana ou feriado nacional.
func IsRestDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return IsPublicHoliday(t)
}

// IsPublicHoliday informa se a data é feriado nacional no Japão,
// incluindo feriados substitutos (furikae kyūjitsu: feriado que cai no
// domingo desloca a folga para o próximo dia útil).
func IsPublicHoliday(t time.Time) bool {
	if isHolidayProper(t.Year(), int(t.Month()), t.Day()) {
		return true
	}
	return isSubstituteHoliday(t)
}

// isSubstituteHoliday aplica a regra do feriado substituto: se um
// feriado caiu num domingo anterior e todos os dias entre ele e a data
// consultada também foram feriados, a data consultada é folga.
func isSubstituteHoliday(t time.Time) bool {
	if t.Weekday() == time.Sunday {
		return false
	}

	prev := t.AddDate(0, 0, -1)
	for isHolidayProper(prev.Year(), int(prev.Month()), prev.Day()) {
		if prev.Weekday() == time.Sunday {
			return true
		}
		prev = prev.AddDate(0, 0, -1)
	}

	return false
}

// isHolidayProper verifica os feriados em si, sem a regra de
// substituição.
func isHolidayProper(year, month, day int) bool {
	switch month {
	case 1:
		if day == 1 {
			return true // Ano Novo
		}
		if day == nthMonday(year, 1, 2) {
			return true // Dia da Maioridade
		}
	case 2:
		if day == 11 {
			return true // Fundação Nacional
		}
		if year >= 2020 && day == 23 {
			return true // Aniversário do Imperador
		}
	case 3:
		if day == vernalEquinoxDay(year) {
			return true
		}
	case 4:
		if day == 29 {
			return true // Dia Shōwa
		}
	case 5:
		if day == 3 || day == 4 || day == 5 {
			return true // Constituição, Verde, Crianças
		}
	case 7:
		if day == marineDay(year) {
			return true
		}
	case 8:
		if day == mountainDay(year) {
			return true
		}
	case 9:
		if day == nthMonday(year, 9, 3) {
			return true // Dia do Respeito aos Idosos
		}
		if day == autumnalEquinoxDay(year) {
			return true
		}
	case 10:
		if day == sportsDay(year) {
			return true
		}
	case 11:
		if day == 3 {
			return true // Dia da Cultura
		}
		if day == 23 {
			return true // Ação de Graças do Trabalho
		}
	}

	return false
}

// nthMonday retorna o dia do mês da n-ésima segunda-feira.
func nthMonday(year, month, n int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Monday) - int(first.Weekday()) + 7) % 7
	return 1 + offset + (n-1)*7
}

// vernalEquinoxDay calcula o dia do equinócio de primavera pela fórmula
// astronômica aproximada, válida para 1900-2099.
func vernalEquinoxDay(year int) int {
	return int(math.Floor(20.8431+0.242194*float64(year-1980))) - (year-1980)/4
}

// autumnalEquinoxDay calcula o dia do equinócio de outono, mesma
// aproximação.
func autumnalEquinoxDay(year int) int {
	return int(math.Floor(23.2488+0.242194*float64(year-1980))) - (year-1980)/4
}

// marineDay trata as mudanças do Dia do Mar: terceira segunda de julho,
// com exceções olímpicas em 2020/2021.
func marineDay(year int) int {
	switch year {
	case 2020:
		return 23
	case 2021:
		return 22
	}
	if year >= 2003 {
		return nthMonday(year, 7, 3)
	}
	return 20
}

// mountainDay existe desde 2016; exceções olímpicas em 2020/2021.
func mountainDay(year int) int {
	switch {
	case year == 2020:
		return 10
	case year == 2021:
		return 8
	case year >= 2016:
		return 11
	}
	return 0
}

// sportsDay: segunda segunda-feira de outubro; em 2020/2021 foi movido
// para julho, então outubro não teve feriado nesses anos.
func sportsDay(year int) int {
	if year == 2020 || year == 2021 {
		return 0
	}
	if year >= 2000 {
		return nthMonday(year, 10, 2)
	}
	return 10
}
