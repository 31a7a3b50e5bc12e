package authenticating

import (
	"context"

	"github.com/insitemarketing/metryka-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

//go:generate mockgen -source=oauth.go -destination=mocks/mock_oauth.go -package=mocks

var googleScopes = []string{
	"https://www.googleapis.com/auth/adwords",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

// OAuthProvider é a parte de *oauth2.Config usada no fluxo authorization-code
type OAuthProvider interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

func NewGoogleOAuthConfig(cfg config.Google) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       googleScopes,
		Endpoint:     google.Endpoint,
	}
}
