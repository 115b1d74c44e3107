package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/reporting"
	"github.com/halsbagel/sales-dashboard-api/pkg/apiErrors"
	"github.com/halsbagel/sales-dashboard-api/pkg/log"
	"github.com/halsbagel/sales-dashboard-api/pkg/utils"
)

// GetSummaryReport agrega lançamentos e metas de uma janela de datas na
// granularidade pedida (day, month, year ou none)
func GetSummaryReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startStr := r.URL.Query().Get("start_date")
		endStr := r.URL.Query().Get("end_date")
		if startStr == "" || endStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(startStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": startStr,
				"error":      err.Error(),
			}).Warn("reports: start_date inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(endStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": endStr,
				"error":    err.Error(),
			}).Warn("reports: end_date inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		groupBy := domain.GroupBy(r.URL.Query().Get("group_by"))
		if groupBy == "" {
			groupBy = domain.GroupByDay
		}

		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
			"group_by":   string(groupBy),
		}).Debug("reports: gerando relatório de resumo")

		report, err := service.SummaryReport(*startDate, *endDate, groupBy)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrInvalidWindow):
				apiErrors.WriteError(w, apiErrors.ErrInvalidWindow, "Data inicial posterior à data final", map[string]any{
					"start_date": startStr,
					"end_date":   endStr,
				})

			case errors.Is(err, reporting.ErrInvalidGroupBy):
				apiErrors.WriteError(w, apiErrors.ErrInvalidGroupBy, "group_by deve ser day, month, year ou none", nil)

			default:
				logger.WithError(err).Error("reports: falha ao gerar relatório de resumo")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetMonthlyReport gera o relatório diário de um mês específico
func GetMonthlyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := parseYearMonth(r)
		if err != nil {
			logger.WithError(err).Warn("reports: parâmetros do relatório mensal inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12", nil)
			return
		}

		report, err := service.MonthlyReport(year, month)
		if err != nil {
			logger.WithFields(log.Fields{
				"year":  year,
				"month": month,
				"error": err.Error(),
			}).Error("reports: falha ao gerar relatório mensal")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório mensal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetAnnualReport calcula o atingimento do ano considerando as metas
// somente até a última data com lançamento
func GetAnnualReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		yearStr := r.URL.Query().Get("year")
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro year inválido", nil)
			return
		}

		report, err := service.AnnualReport(year)
		if err != nil {
			logger.WithFields(log.Fields{
				"year":  year,
				"error": err.Error(),
			}).Error("reports: falha ao gerar relatório anual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório anual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetMonthHistory devolve o snapshot persistido de um mês fechado.
// Período no formato mm-yyyy.
func GetMonthHistory(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period := r.URL.Query().Get("period")
		if period == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro period é obrigatório (mm-yyyy)", nil)
			return
		}

		summary, err := service.MonthHistory(period)
		if err != nil {
			logger.WithFields(log.Fields{
				"period": period,
				"error":  err.Error(),
			}).Error("reports: falha ao buscar snapshot mensal")

			if strings.Contains(err.Error(), "período inválido") {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido, use o formato mm-yyyy", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot mensal", nil)
			return
		}

		if summary == nil {
			apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Snapshot não encontrado para o período", map[string]any{
				"period": period,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("reports: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetAvailablePeriods retorna os períodos mensais com snapshot disponível
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("reports: falha ao listar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar períodos disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("reports: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
