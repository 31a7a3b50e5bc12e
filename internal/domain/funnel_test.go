package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRates(t *testing.T) {
	tests := []struct {
		name   string
		funnel Funnel
		want   Rates
	}{
		{
			name:   "funil completo acima das metas",
			funnel: Funnel{LeadsMarketing: 120, LeadsCRM: 100, Scheduled: 50, Attended: 25, Sold: 10},
			want: Rates{
				Scheduling: RateResult{Rate: 50, Goal: 40, GoalMet: true},
				Attendance: RateResult{Rate: 50, Goal: 40, GoalMet: true},
				Closing:    RateResult{Rate: 40, Goal: 30, GoalMet: true},
			},
		},
		{
			name:   "denominadores zerados geram taxa zero",
			funnel: Funnel{LeadsMarketing: 10},
			want: Rates{
				Scheduling: RateResult{Rate: 0, Goal: 40},
				Attendance: RateResult{Rate: 0, Goal: 40},
				Closing:    RateResult{Rate: 0, Goal: 30},
			},
		},
		{
			name:   "taxas arredondadas abaixo da meta",
			funnel: Funnel{LeadsCRM: 3, Scheduled: 1, Attended: 1, Sold: 0},
			want: Rates{
				Scheduling: RateResult{Rate: 33.33, Goal: 40},
				Attendance: RateResult{Rate: 100, Goal: 40, GoalMet: true},
				Closing:    RateResult{Rate: 0, Goal: 30},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateRates(tt.funnel, FunnelGoals))
		})
	}
}

func TestFunnel_Validate(t *testing.T) {
	assert.NoError(t, Funnel{LeadsCRM: 1}.Validate())
	assert.ErrorIs(t, Funnel{Sold: -1}.Validate(), ErrNegativeFunnelValue)
	assert.ErrorIs(t, Costs{MetaSpend: -0.5}.Validate(), ErrNegativeFunnelValue)
}

func TestClinicHelpers(t *testing.T) {
	c := NewClinic("id1", "  Sorriso Feliz ", "123", "", timeZero)

	assert.Equal(t, "Sorriso Feliz", c.Name)
	assert.Nil(t, c.GoogleAdsID)
	assert.Equal(t, "123", *c.MetaAdsID)
	assert.True(t, SameName("SORRISO feliz", c.Name))
	assert.False(t, SameName("Sorriso", c.Name))
}
