package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/apiErrors"
	"github.com/insitemarketing/metryka-api/pkg/log"
)

type contextKey string

const ContextKeySession contextKey = "session"

// SessionMiddleware resolve o cookie contra o Store e coloca a sessão no
// contexto. Sem cookie válido, uma sessão nova é criada; ela só é persistida
// quando algum handler chama Store.Set.
func SessionMiddleware(store session.Store, codec *session.CookieCodec, cfg config.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := loadSession(r, store, codec, cfg.CookieName)

			if sess == nil {
				sess = domain.NewSession(uuid.New().String(), time.Now(), cfg.TTL)
				if err := WriteSessionCookie(w, codec, cfg, sess); err != nil {
					log.ForContext(r.Context()).WithError(err).Error("Erro ao assinar cookie de sessão")
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar sessão", nil)
					return
				}
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loadSession(r *http.Request, store session.Store, codec *session.CookieCodec, cookieName string) *domain.Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	id, err := codec.Decode(cookie.Value)
	if err != nil {
		log.ForContext(r.Context()).Debug("Cookie de sessão inválido, criando nova sessão")
		return nil
	}

	sess, err := store.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao carregar sessão do store")
		}
		return nil
	}

	return sess
}

// SessionFromContext devolve a sessão da requisição. Nunca é nil atrás do
// SessionMiddleware.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(ContextKeySession).(*domain.Session)
	return sess
}

func WriteSessionCookie(w http.ResponseWriter, codec *session.CookieCodec, cfg config.Session, sess *domain.Session) error {
	value, err := codec.Encode(sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func ClearSessionCookie(w http.ResponseWriter, cfg config.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireGoogleToken barra rotas que dependem do token OAuth da sessão
func RequireGoogleToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !SessionFromContext(r.Context()).IsAuthenticated() {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Acesso sem login Google")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Faça login com o Google", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
