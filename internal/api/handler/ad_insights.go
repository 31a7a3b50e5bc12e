package handler

import (
	"net/http"

	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/internal/usecases/insighting"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/middleware"
)

func metricsQueryFromRequest(r *http.Request) domain.MetricsQuery {
	q := r.URL.Query()
	return domain.MetricsQuery{
		AccountID: q.Get("accountId"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

func queryFields(query domain.MetricsQuery) log.Fields {
	return log.Fields{
		"account_id": query.AccountID,
		"start_date": query.StartDate,
		"end_date":   query.EndDate,
	}
}

func GetGoogleTotals(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := metricsQueryFromRequest(r)
		logger := log.ForContext(r.Context()).WithFields(queryFields(query))

		sess := middleware.SessionFromContext(r.Context())

		totals, err := service.GetGoogleTotals(r.Context(), query, sess.AccessToken)
		if err != nil {
			logger.WithError(err).Warn("insights: falha ao buscar totais do Google Ads")
			writeServiceError(w, err)
			return
		}

		logger.Debug("insights: totais do Google Ads obtidos")
		writeJSON(w, r, http.StatusOK, totals)
	})
}

func GetMetaSpend(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := metricsQueryFromRequest(r)
		logger := log.ForContext(r.Context()).WithFields(queryFields(query))

		spend, err := service.GetMetaSpend(r.Context(), query)
		if err != nil {
			logger.WithError(err).Warn("insights: falha ao buscar investimento na Meta")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, spend)
	})
}

func GetMetaConversions(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := metricsQueryFromRequest(r)
		logger := log.ForContext(r.Context()).WithFields(queryFields(query))

		conversions, err := service.GetMetaConversions(r.Context(), query)
		if err != nil {
			logger.WithError(err).Warn("insights: falha ao buscar conversas na Meta")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, conversions)
	})
}

// GetClinicMetrics consolida as duas fontes. Sem login Google, a fonte Google
// volta como unauthenticated e a Meta continua sendo consultada.
func GetClinicMetrics(service insighting.CombinedInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		clinicName := q.Get("clinicName")
		logger := log.ForContext(r.Context()).WithField("clinic_name", clinicName)

		sess := middleware.SessionFromContext(r.Context())

		result, err := service.GetClinicMetrics(r.Context(), clinicName, q.Get("startDate"), q.Get("endDate"), sess.AccessToken)
		if err != nil {
			logger.WithError(err).Warn("insights: falha ao consolidar métricas da clínica")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
