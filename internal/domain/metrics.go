package domain

import (
	"errors"
	"strings"

	"github.com/insitemarketing/metryka-api/pkg/utils"
)

var (
	ErrInvalidStartDate = errors.New("startDate must be a YYYY-MM-DD date")
	ErrInvalidEndDate   = errors.New("endDate must be a YYYY-MM-DD date")
	ErrInvalidDateRange = errors.New("startDate must not be after endDate")
	ErrInvalidAccountID = errors.New("accountId must contain only digits")
)

// MetricsQuery é o filtro de uma consulta de métricas a um provedor
type MetricsQuery struct {
	AccountID string
	StartDate string
	EndDate   string
}

// ValidateRange checa apenas as datas. Nada chega a uma API cobrada sem
// passar por aqui.
func ValidateRange(startDate, endDate string) error {
	if !utils.IsISODate(startDate) {
		return ErrInvalidStartDate
	}
	if !utils.IsISODate(endDate) {
		return ErrInvalidEndDate
	}
	// mesmo formato fixo, a comparação lexicográfica basta
	if startDate > endDate {
		return ErrInvalidDateRange
	}
	return nil
}

func (q MetricsQuery) Validate() error {
	if err := ValidateRange(q.StartDate, q.EndDate); err != nil {
		return err
	}
	if !isDigits(q.normalizedAccountID()) {
		return ErrInvalidAccountID
	}
	return nil
}

// normalizedAccountID aceita os formatos exibidos nos painéis: hífens do
// Google Ads ("123-456-7890") e o prefixo act_ da Meta.
func (q MetricsQuery) normalizedAccountID() string {
	id := strings.TrimSpace(q.AccountID)
	id = strings.TrimPrefix(id, "act_")
	return strings.ReplaceAll(id, "-", "")
}

func (q MetricsQuery) GoogleCustomerID() string {
	return q.normalizedAccountID()
}

// MetaAccountID vem sem o prefixo act_, que o cliente adiciona na URL
func (q MetricsQuery) MetaAccountID() string {
	return q.normalizedAccountID()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// GoogleTotals são os totais do Google Ads no período
type GoogleTotals struct {
	CostMicros     int64   `json:"costMicros"`
	Cost           float64 `json:"cost"`
	AllConversions float64 `json:"allConversions"`
}

func NewGoogleTotals(costMicros int64, allConversions float64) *GoogleTotals {
	return &GoogleTotals{
		CostMicros:     costMicros,
		Cost:           float64(costMicros) / 1_000_000,
		AllConversions: allConversions,
	}
}

// SourceStatus diferencia zero legítimo de falha na busca
type SourceStatus string

const (
	SourceOK              SourceStatus = "ok"
	SourceFailed          SourceStatus = "failed"
	SourceNotConfigured   SourceStatus = "not_configured"
	SourceUnauthenticated SourceStatus = "unauthenticated"
)

// SourceMetrics é o resultado de um provedor dentro da visão da clínica
type SourceMetrics struct {
	Status      SourceStatus `json:"status"`
	AccountID   string       `json:"accountId,omitempty"`
	Spend       float64      `json:"spend"`
	Conversions float64      `json:"conversions"`
	Error       string       `json:"error,omitempty"`
}

// ClinicMetrics consolida Google e Meta para uma clínica no período
type ClinicMetrics struct {
	ClinicName     string        `json:"clinicName"`
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	Google         SourceMetrics `json:"google"`
	Meta           SourceMetrics `json:"meta"`
	TotalSpend     float64       `json:"totalSpend"`
	LeadsMarketing float64       `json:"leadsMarketing"`
	CPL            float64       `json:"cpl"`
	Complete       bool          `json:"complete"`
}

// Summarize soma apenas as fontes com status ok. Complete fica falso se
// alguma fonte configurada falhou.
func (m *ClinicMetrics) Summarize() {
	m.TotalSpend = 0
	m.LeadsMarketing = 0
	m.Complete = true

	for _, source := range []SourceMetrics{m.Google, m.Meta} {
		switch source.Status {
		case SourceOK:
			m.TotalSpend += source.Spend
			m.LeadsMarketing += source.Conversions
		case SourceFailed, SourceUnauthenticated:
			m.Complete = false
		}
	}

	m.TotalSpend = utils.RoundWithTwoDecimalPlace(m.TotalSpend)
	// allConversions do Google vem fracionado
	m.LeadsMarketing = utils.RoundWithTwoDecimalPlace(m.LeadsMarketing)
	m.CPL = 0
	if m.LeadsMarketing > 0 {
		m.CPL = utils.RoundWithTwoDecimalPlace(m.TotalSpend / m.LeadsMarketing)
	}
}
