package handler

import (
	"net/http"

	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
)

// CreateClinicRequest aceita nulos nos IDs, como o formulário do painel envia
type CreateClinicRequest struct {
	Name        string  `json:"name"`
	MetaAdsID   *string `json:"metaAdsId"`
	GoogleAdsID *string `json:"googleAdsId"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func GetClinicIDs(service clinic.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("clinicName")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro clinicName é obrigatório", nil)
			return
		}

		ids, err := service.GetClinicIDs(r.Context(), name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ids)
	})
}

func ListClinics(service clinic.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clinics, err := service.ListClinics(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, clinics)
	})
}

func CreateClinic(service clinic.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CreateClinicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao cadastrar clínica")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if _, err := service.AddClinic(r.Context(), req.Name, deref(req.MetaAdsID), deref(req.GoogleAdsID)); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteClinic responde 204 mesmo quando o nome não existe
func DeleteClinic(service clinic.ClinicService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("clinicName")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro clinicName é obrigatório", nil)
			return
		}

		if err := service.DeleteClinic(r.Context(), name); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
