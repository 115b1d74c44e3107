package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/recording"
	"github.com/halsbagel/sales-dashboard-api/pkg/apiErrors"
	"github.com/halsbagel/sales-dashboard-api/pkg/log"
)

// ListTargetRecords lista as metas diárias de um mês
func ListTargetRecords(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := parseYearMonth(r)
		if err != nil {
			logger.WithError(err).Warn("targets: parâmetros de listagem inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		targets, err := service.ListTargetRecords(year, month)
		if err != nil {
			if errors.Is(err, recording.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"year":  year,
				"month": month,
				"error": err.Error(),
			}).Error("targets: falha ao listar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(targets); err != nil {
			logger.WithError(err).Error("targets: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpsertTargetRecord grava a meta de um dia, substituindo a existente
func UpsertTargetRecord(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.TargetRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("targets: corpo de requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data da meta é obrigatória", nil)
			return
		}

		target, err := service.UpsertTargetRecord(&req)
		if err != nil {
			if errors.Is(err, recording.ErrInvalidDate) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}

			logger.WithFields(log.Fields{
				"date":  req.Date,
				"error": err.Error(),
			}).Error("targets: falha ao gravar meta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar meta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"date":         req.Date,
			"target_sales": target.TargetSales,
		}).Info("targets: meta gravada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			logger.WithError(err).Error("targets: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteTargetRecord remove a meta de uma data específica
func DeleteTargetRecord(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		if err := service.DeleteTargetRecord(date); err != nil {
			switch {
			case errors.Is(err, recording.ErrInvalidDate):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)

			case errors.Is(err, recording.ErrRecordNotFound):
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Meta não encontrada", map[string]any{
					"date": date,
				})

			default:
				logger.WithFields(log.Fields{
					"date":  date,
					"error": err.Error(),
				}).Error("targets: falha ao remover meta")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover meta", nil)
			}
			return
		}

		logger.WithField("date", date).Info("targets: meta removida")
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListMinimumTargets lista os pisos mensais de vendas
func ListMinimumTargets(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		minimums, err := service.ListMinimumTargets()
		if err != nil {
			logger.WithError(err).Error("targets: falha ao listar pisos mensais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pisos mensais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(minimums); err != nil {
			logger.WithError(err).Error("targets: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

type upsertMinimumTargetRequest struct {
	MinSales int64 `json:"min_sales"`
}

// UpsertMinimumTarget grava o piso de vendas de um mês do calendário (1-12)
func UpsertMinimumTarget(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		monthStr := httprouter.ParamsFromContext(r.Context()).ByName("month")
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", nil)
			return
		}

		var req upsertMinimumTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("targets: corpo de requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		minimum, err := service.UpsertMinimumTarget(month, req.MinSales)
		if err != nil {
			if errors.Is(err, recording.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês deve estar entre 1 e 12", nil)
				return
			}

			logger.WithFields(log.Fields{
				"month": month,
				"error": err.Error(),
			}).Error("targets: falha ao gravar piso mensal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar piso mensal", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month":     month,
			"min_sales": minimum.MinSales,
		}).Info("targets: piso mensal gravado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(minimum); err != nil {
			logger.WithError(err).Error("targets: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
