package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TruncateToDay normaliza um instante para meia-noite, mantendo a
// localização. Datas de lançamentos e metas são sempre dias de calendário.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthPeriod formata um mês no formato mm-yyyy usado nos snapshots
// mensais.
func MonthPeriod(t time.Time) string {
	return t.Format("01-2006")
}
