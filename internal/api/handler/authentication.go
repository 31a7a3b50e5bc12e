package handler

import (
	"errors"
	"net/http"

	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/usecases/authenticating"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
	"github.com/insitemarketing/metryka-api/pkg/middleware"
)

type AuthStatusResponse struct {
	LoggedIn bool `json:"loggedIn"`
}

// Authorize redireciona o navegador para a tela de consentimento do Google
func Authorize(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())

		url, err := service.Authorize(r.Context(), sess)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao iniciar login Google")
			writeServiceError(w, err)
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}

// EndAuth é a callback do OAuth. Sucesso redireciona para o painel.
func EndAuth(service authenticating.Authenticator, landingURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		params := authenticating.CallbackParams{
			Code:  q.Get("code"),
			State: q.Get("state"),
			Error: q.Get("error"),
		}

		sess := middleware.SessionFromContext(r.Context())

		if err := service.CompleteAuthorization(r.Context(), sess, params); err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) && authErr.Code == apiErrors.ErrTokenExchange {
				// detalhes do provedor ficam só no log
				apiErrors.WriteError(w, authErr.Code, "Falha na autenticação com o Google", nil)
				return
			}
			writeServiceError(w, err)
			return
		}

		http.Redirect(w, r, landingURL, http.StatusFound)
	}
}

func AuthStatus(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())
		writeJSON(w, r, http.StatusOK, AuthStatusResponse{LoggedIn: service.SessionStatus(sess)})
	}
}

// Me devolve a conta Google da sessão
func Me(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())

		user, err := service.GetUserInfo(r.Context(), sess)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao buscar dados da conta Google")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

func Logout(service authenticating.Authenticator, cfg config.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())

		if err := service.Logout(r.Context(), sess); err != nil {
			writeServiceError(w, err)
			return
		}

		middleware.ClearSessionCookie(w, cfg)
		w.WriteHeader(http.StatusNoContent)
	}
}
