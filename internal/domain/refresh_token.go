package domain

import "time"

// RefreshTokenRecord é uma entrada do log de tokens concedidos pelo Google
type RefreshTokenRecord struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	Expiry       *time.Time `json:"expiry,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
