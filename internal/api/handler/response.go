package handler

import (
	"errors"
	"net/http"

	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/internal/usecases/funnel"
	"github.com/insitemarketing/metryka-api/internal/usecases/insighting"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	var clinicErr *clinic.ClinicError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.As(err, &authErr):
		message := authErr.Error()
		// o erro do store já foi logado pelo caso de uso
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			message = "Erro interno do servidor"
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
	case errors.As(err, &clinicErr):
		message := clinicErr.Details
		if message == "" {
			message = clinicErr.Err.Error()
		}
		// falhas de armazenamento não expõem o detalhe interno
		if errors.Is(err, clinic.ErrDatabaseOperation) {
			message = "Erro ao acessar o cadastro de clínicas"
		}
		apiErrors.WriteError(w, clinicErr.Code, message, nil)
	case errors.Is(err, insighting.ErrInvalidQuery), errors.Is(err, funnel.ErrInvalidAnalysis):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.As(err, &upstreamErr):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Falha ao consultar "+upstreamErr.Provider, map[string]any{
			"provider":  upstreamErr.Provider,
			"operation": upstreamErr.Operation,
			"status":    upstreamErr.StatusCode,
		})
	case errors.Is(err, funnel.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar as análises", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
