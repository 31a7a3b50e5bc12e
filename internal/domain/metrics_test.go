package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   MetricsQuery
		wantErr error
	}{
		{
			name:  "consulta válida",
			query: MetricsQuery{AccountID: "1234567890", StartDate: "2024-01-01", EndDate: "2024-01-31"},
		},
		{
			name:  "id do Google com hífens",
			query: MetricsQuery{AccountID: "123-456-7890", StartDate: "2024-01-01", EndDate: "2024-01-01"},
		},
		{
			name:  "id da Meta com prefixo act_",
			query: MetricsQuery{AccountID: "act_998877", StartDate: "2024-01-01", EndDate: "2024-01-07"},
		},
		{
			name:    "data inicial fora do formato",
			query:   MetricsQuery{AccountID: "1", StartDate: "01/01/2024", EndDate: "2024-01-31"},
			wantErr: ErrInvalidStartDate,
		},
		{
			name:    "data final inexistente",
			query:   MetricsQuery{AccountID: "1", StartDate: "2024-01-01", EndDate: "2024-02-31"},
			wantErr: ErrInvalidEndDate,
		},
		{
			name:    "período invertido",
			query:   MetricsQuery{AccountID: "1", StartDate: "2024-02-01", EndDate: "2024-01-01"},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "conta vazia",
			query:   MetricsQuery{AccountID: "", StartDate: "2024-01-01", EndDate: "2024-01-31"},
			wantErr: ErrInvalidAccountID,
		},
		{
			name:    "conta com caracteres de consulta",
			query:   MetricsQuery{AccountID: "123/../456", StartDate: "2024-01-01", EndDate: "2024-01-31"},
			wantErr: ErrInvalidAccountID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMetricsQuery_AccountIDs(t *testing.T) {
	q := MetricsQuery{AccountID: " 123-456-7890 "}
	assert.Equal(t, "1234567890", q.GoogleCustomerID())

	q = MetricsQuery{AccountID: "act_42"}
	assert.Equal(t, "42", q.MetaAccountID())
}

func TestNewGoogleTotals(t *testing.T) {
	totals := NewGoogleTotals(123450000, 7.5)
	assert.Equal(t, int64(123450000), totals.CostMicros)
	assert.Equal(t, 123.45, totals.Cost)
	assert.Equal(t, 7.5, totals.AllConversions)
}

func TestClinicMetrics_Summarize(t *testing.T) {
	t.Run("soma fontes ok e calcula CPL", func(t *testing.T) {
		m := &ClinicMetrics{
			Google: SourceMetrics{Status: SourceOK, Spend: 100, Conversions: 4},
			Meta:   SourceMetrics{Status: SourceOK, Spend: 50, Conversions: 6},
		}
		m.Summarize()

		assert.Equal(t, 150.0, m.TotalSpend)
		assert.Equal(t, 10.0, m.LeadsMarketing)
		assert.Equal(t, 15.0, m.CPL)
		assert.True(t, m.Complete)
	})

	t.Run("fonte com falha não entra como zero silencioso", func(t *testing.T) {
		m := &ClinicMetrics{
			Google: SourceMetrics{Status: SourceFailed, Error: "boom"},
			Meta:   SourceMetrics{Status: SourceOK, Spend: 80, Conversions: 0},
		}
		m.Summarize()

		assert.Equal(t, 80.0, m.TotalSpend)
		assert.Equal(t, 0.0, m.CPL)
		assert.False(t, m.Complete)
	})

	t.Run("conversões fracionadas do Google são arredondadas", func(t *testing.T) {
		m := &ClinicMetrics{
			Google: SourceMetrics{Status: SourceOK, Spend: 46, Conversions: 12.333333},
			Meta:   SourceMetrics{Status: SourceOK, Spend: 0, Conversions: 3},
		}
		m.Summarize()

		assert.Equal(t, 15.33, m.LeadsMarketing)
		assert.Equal(t, 3.0, m.CPL)
	})

	t.Run("fonte não configurada não torna o resultado incompleto", func(t *testing.T) {
		m := &ClinicMetrics{
			Google: SourceMetrics{Status: SourceNotConfigured},
			Meta:   SourceMetrics{Status: SourceOK, Spend: 10, Conversions: 2},
		}
		m.Summarize()

		assert.True(t, m.Complete)
		assert.Equal(t, 5.0, m.CPL)
	})
}

func TestUpstreamError(t *testing.T) {
	err := &UpstreamError{Provider: ProviderMeta, Operation: "spend", StatusCode: 400, Code: "190", Message: "expired"}

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, "meta spend: status 400 code 190: expired", err.Error())
}
