package authenticating

import (
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/integrator/google"
	"github.com/insitemarketing/metryka-api/infrastructure/repository"
	"github.com/insitemarketing/metryka-api/infrastructure/session"
)

// NewServiceWithClock exposes Service construction with a fixed clock to the
// external test package.
func NewServiceWithClock(
	provider OAuthProvider,
	store session.Store,
	refreshLog repository.RefreshTokenRepository,
	googleClient google.GoogleAdsIntegrator,
	now func() time.Time,
) *Service {
	return &Service{
		provider:     provider,
		store:        store,
		refreshLog:   refreshLog,
		googleClient: googleClient,
		now:          now,
	}
}

// SetProvider replaces the OAuth provider; test-only.
func (s *Service) SetProvider(p OAuthProvider) {
	s.provider = p
}
