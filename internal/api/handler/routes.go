package handler

import (
	"net/http"

	"github.com/insitemarketing/metryka-api/internal/api/handler/router"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/internal/usecases/clinic"
	"github.com/insitemarketing/metryka-api/internal/usecases/funnel"
	"github.com/insitemarketing/metryka-api/internal/usecases/insighting"
	"github.com/insitemarketing/metryka-api/pkg/metrics"
	"github.com/insitemarketing/metryka-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Name:    "auth",
			Path:    "/api/auth",
			Method:  http.MethodGet,
			Handler: Authorize(service),
		},
		{
			Name:    "end_auth",
			Path:    "/api/endAuth",
			Method:  http.MethodGet,
			Handler: EndAuth(service, cfg.App.LandingURL),
		},
		{
			Name:    "auth_status",
			Path:    "/api/auth/status",
			Method:  http.MethodGet,
			Handler: AuthStatus(service),
		},
		{
			Name:        "auth_me",
			Path:        "/api/auth/me",
			Method:      http.MethodGet,
			Handler:     Me(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireGoogleToken()},
		},
		{
			Name:    "auth_logout",
			Path:    "/api/auth/logout",
			Method:  http.MethodGet,
			Handler: Logout(service, cfg.Session),
		},
	}
}

func Clinics(service clinic.ClinicService) []router.Route {
	return []router.Route{
		{
			Name:    "clinic_ids",
			Path:    "/api/clinics",
			Method:  http.MethodGet,
			Handler: GetClinicIDs(service),
		},
		{
			Name:    "clinic_list",
			Path:    "/api/clinics/all",
			Method:  http.MethodGet,
			Handler: ListClinics(service),
		},
		{
			Name:    "clinic_create",
			Path:    "/api/clinics",
			Method:  http.MethodPost,
			Handler: CreateClinic(service),
		},
		{
			Name:    "clinic_delete",
			Path:    "/api/clinics",
			Method:  http.MethodDelete,
			Handler: DeleteClinic(service),
		},
	}
}

func Insights(service insighting.CombinedInsighter) []router.Route {
	return []router.Route{
		{
			Name:        "google_totals",
			Path:        "/api/google/totalData",
			Method:      http.MethodGet,
			Handler:     GetGoogleTotals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireGoogleToken()},
		},
		{
			Name:    "meta_spend",
			Path:    "/api/meta/accountSpend",
			Method:  http.MethodGet,
			Handler: GetMetaSpend(service),
		},
		{
			Name:    "meta_conversions",
			Path:    "/api/meta/conversions",
			Method:  http.MethodGet,
			Handler: GetMetaConversions(service),
		},
		{
			Name:    "clinic_metrics",
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: GetClinicMetrics(service),
		},
	}
}

// Analyses só é registrado com o driver postgres
func Analyses(service funnel.FunnelService) []router.Route {
	return []router.Route{
		{
			Name:    "analysis_save",
			Path:    "/api/analyses",
			Method:  http.MethodPost,
			Handler: SaveAnalysis(service),
		},
		{
			Name:    "analysis_list",
			Path:    "/api/analyses",
			Method:  http.MethodGet,
			Handler: ListAnalyses(service),
		},
	}
}
