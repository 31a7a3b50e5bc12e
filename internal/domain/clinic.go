package domain

import (
	"strings"
	"time"
)

// Clinic é a clínica atendida e as contas de anúncio vinculadas a ela
type Clinic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	GoogleAdsID *string   `json:"googleAdsId"`
	MetaAdsID   *string   `json:"metaAdsId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClinicIDs é a resposta da busca de contas por nome de clínica
type ClinicIDs struct {
	GoogleAdsID *string `json:"GoogleAdsId"`
	MetaAdsID   *string `json:"MetaAdsId"`
}

// NewClinic normaliza os campos de entrada. IDs vazios viram nulos.
func NewClinic(id, name, metaAdsID, googleAdsID string, now time.Time) *Clinic {
	return &Clinic{
		ID:          id,
		Name:        strings.TrimSpace(name),
		GoogleAdsID: optional(googleAdsID),
		MetaAdsID:   optional(metaAdsID),
		CreatedAt:   now,
	}
}

// SameName compara nomes de clínica sem diferenciar maiúsculas
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (c *Clinic) IDs() ClinicIDs {
	return ClinicIDs{
		GoogleAdsID: c.GoogleAdsID,
		MetaAdsID:   c.MetaAdsID,
	}
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
