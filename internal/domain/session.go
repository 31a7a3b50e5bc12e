package domain

import "time"

// Session guarda o estado OAuth de um navegador
type Session struct {
	ID          string    `json:"id"`
	State       string    `json:"state,omitempty"`
	AccessToken string    `json:"accessToken,omitempty"`
	TokenExpiry time.Time `json:"tokenExpiry,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsAuthenticated indica se a sessão já concluiu o fluxo OAuth
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.AccessToken != ""
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ConsumeState devolve o nonce pendente e o descarta. O nonce só vale uma vez.
func (s *Session) ConsumeState() string {
	state := s.State
	s.State = ""
	return state
}
