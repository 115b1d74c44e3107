package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/halsbagel/sales-dashboard-api/internal/domain"
	"github.com/halsbagel/sales-dashboard-api/internal/usecases/recording"
	"github.com/halsbagel/sales-dashboard-api/pkg/apiErrors"
	"github.com/halsbagel/sales-dashboard-api/pkg/log"
)

// parseYearMonth extrai e valida os parâmetros year e month da query string
func parseYearMonth(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("parâmetro year inválido: %q", r.URL.Query().Get("year"))
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, fmt.Errorf("parâmetro month inválido: %q", r.URL.Query().Get("month"))
	}

	return year, month, nil
}

// ListSalesRecords lista os lançamentos diários de um mês
func ListSalesRecords(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := parseYearMonth(r)
		if err != nil {
			logger.WithError(err).Warn("sales: parâmetros de listagem inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		records, err := service.ListSalesRecords(year, month)
		if err != nil {
			if errors.Is(err, recording.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"year":  year,
				"month": month,
				"error": err.Error(),
			}).Error("sales: falha ao listar lançamentos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar lançamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("sales: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetSalesRecord busca o lançamento de uma data específica
func GetSalesRecord(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		record, err := service.GetSalesRecord(date)
		if err != nil {
			switch {
			case errors.Is(err, recording.ErrInvalidDate):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)

			case errors.Is(err, recording.ErrRecordNotFound):
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Lançamento não encontrado", map[string]any{
					"date": date,
				})

			default:
				logger.WithFields(log.Fields{
					"date":  date,
					"error": err.Error(),
				}).Error("sales: falha ao buscar lançamento")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar lançamento", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("sales: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpsertSalesRecord grava o lançamento de um dia, substituindo o registro
// existente daquela data
func UpsertSalesRecord(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SalesRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("sales: corpo de requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data do lançamento é obrigatória", nil)
			return
		}

		record, err := service.UpsertSalesRecord(&req)
		if err != nil {
			if errors.Is(err, recording.ErrInvalidDate) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}

			logger.WithFields(log.Fields{
				"date":  req.Date,
				"error": err.Error(),
			}).Error("sales: falha ao gravar lançamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar lançamento", nil)
			return
		}

		logger.WithFields(log.Fields{
			"date":         req.Date,
			"actual_sales": record.ActualSales,
		}).Info("sales: lançamento gravado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logger.WithError(err).Error("sales: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// DeleteSalesRecord remove o lançamento de uma data específica
func DeleteSalesRecord(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		if err := service.DeleteSalesRecord(date); err != nil {
			switch {
			case errors.Is(err, recording.ErrInvalidDate):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)

			case errors.Is(err, recording.ErrRecordNotFound):
				apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Lançamento não encontrado", map[string]any{
					"date": date,
				})

			default:
				logger.WithFields(log.Fields{
					"date":  date,
					"error": err.Error(),
				}).Error("sales: falha ao remover lançamento")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover lançamento", nil)
			}
			return
		}

		logger.WithField("date", date).Info("sales: lançamento removido")
		w.WriteHeader(http.StatusNoContent)
	}
}

// ImportSalesCSV importa lançamentos de um arquivo CSV enviado no corpo da
// requisição. Linhas malformadas não interrompem o lote.
func ImportSalesCSV(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		result, err := service.ImportSalesCSV(r.Body)
		if err != nil {
			switch {
			case errors.Is(err, recording.ErrEmptyCSV):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo CSV vazio", nil)

			case errors.Is(err, recording.ErrInvalidCSV):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Cabeçalho do CSV inválido", nil)

			default:
				logger.WithError(err).Error("sales: falha ao importar CSV")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar CSV", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"batch_id": result.BatchID,
			"imported": result.Imported,
			"skipped":  result.Skipped,
		}).Info("sales: importação de CSV concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("sales: falha ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ExportSalesCSV exporta os lançamentos de um mês em CSV
func ExportSalesCSV(service recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, month, err := parseYearMonth(r)
		if err != nil {
			logger.WithError(err).Warn("sales: parâmetros de exportação inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês inválido", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=sales-%04d-%02d.csv", year, month))

		if err := service.ExportSalesCSV(w, year, month); err != nil {
			// Cabeçalhos já foram enviados; resta registrar a falha
			logger.WithFields(log.Fields{
				"year":  year,
				"month": month,
				"error": err.Error(),
			}).Error("sales: falha ao exportar CSV")
		}
	}
}
