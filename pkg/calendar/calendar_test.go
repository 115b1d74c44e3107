package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestIsPublicHoliday(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"Ano Novo", date(2025, 1, 1), true},
		{"Dia da Maioridade (2a segunda de janeiro)", date(2025, 1, 13), true},
		{"Fundação Nacional", date(2025, 2, 11), true},
		{"Aniversário do Imperador", date(2025, 2, 23), true},
		{"Substituto do Aniversário do Imperador (domingo)", date(2025, 2, 24), true},
		{"Equinócio de primavera 2025", date(2025, 3, 20), true},
		{"Dia Shōwa", date(2025, 4, 29), true},
		{"Dia da Constituição", date(2025, 5, 3), true},
		{"Dia das Crianças", date(2025, 5, 5), true},
		{"Substituto da Golden Week (dia 4 caiu no domingo)", date(2025, 5, 6), true},
		{"Dia do Mar 2025", date(2025, 7, 21), true},
		{"Dia da Montanha", date(2025, 8, 11), true},
		{"Dia do Respeito aos Idosos", date(2025, 9, 15), true},
		{"Equinócio de outono 2025", date(2025, 9, 23), true},
		{"Dia do Esporte 2025", date(2025, 10, 13), true},
		{"Dia da Cultura", date(2025, 11, 3), true},
		{"Ação de Graças do Trabalho", date(2025, 11, 23), true},
		{"Substituto de 23/11 (domingo)", date(2025, 11, 24), true},
		{"Dia útil comum", date(2025, 6, 11), false},
		{"Véspera de feriado não é feriado", date(2025, 5, 2), false},
		{"Dia do Mar movido em 2021", date(2021, 7, 22), true},
		{"Terceira segunda de julho de 2021 não foi feriado", date(2021, 7, 19), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublicHoliday(tt.day))
		})
	}
}

func TestIsRestDay(t *testing.T) {
	// Sábado e domingo comuns
	assert.True(t, IsRestDay(date(2025, 6, 14)))
	assert.True(t, IsRestDay(date(2025, 6, 15)))

	// Quarta-feira comum
	assert.False(t, IsRestDay(date(2025, 6, 11)))

	// Feriado no meio da semana
	assert.True(t, IsRestDay(date(2025, 11, 3)))
}
