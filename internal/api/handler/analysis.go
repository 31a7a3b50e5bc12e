package handler

import (
	"net/http"

	"github.com/insitemarketing/metryka-api/internal/usecases/funnel"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
)

func SaveAnalysis(service funnel.FunnelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input funnel.AnalysisInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao gravar análise")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		report, err := service.SaveAnalysis(r.Context(), input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func ListAnalyses(service funnel.FunnelService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("clinicName")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro clinicName é obrigatório", nil)
			return
		}

		reports, err := service.ListAnalyses(r.Context(), name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, reports)
	})
}
