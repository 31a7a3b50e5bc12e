package domain

import (
	"errors"
	"time"

	"github.com/insitemarketing/metryka-api/pkg/utils"
)

var ErrNegativeFunnelValue = errors.New("funnel values must not be negative")

// Metas de conversão do funil, em porcentagem
var FunnelGoals = Goals{
	Scheduling: 40,
	Attendance: 40,
	Closing:    30,
}

type Goals struct {
	Scheduling float64 `json:"agendamento"`
	Attendance float64 `json:"comparecimento"`
	Closing    float64 `json:"fechamento"`
}

// Funnel são as contagens de cada etapa: leads de marketing, leads no CRM,
// agendamentos, comparecimentos e vendas.
type Funnel struct {
	LeadsMarketing int `json:"leadsMarketing"`
	LeadsCRM       int `json:"leadsCRM"`
	Scheduled      int `json:"agendamentos"`
	Attended       int `json:"comparecimentos"`
	Sold           int `json:"vendas"`
}

func (f Funnel) Validate() error {
	for _, v := range []int{f.LeadsMarketing, f.LeadsCRM, f.Scheduled, f.Attended, f.Sold} {
		if v < 0 {
			return ErrNegativeFunnelValue
		}
	}
	return nil
}

type Costs struct {
	MetaSpend   float64 `json:"valorGastoMeta"`
	GoogleSpend float64 `json:"valorGastoGoogle"`
	MetaCPL     float64 `json:"custoLeadMeta"`
	GoogleCPL   float64 `json:"custoLeadGoogle"`
}

func (c Costs) Validate() error {
	for _, v := range []float64{c.MetaSpend, c.GoogleSpend, c.MetaCPL, c.GoogleCPL} {
		if v < 0 {
			return ErrNegativeFunnelValue
		}
	}
	return nil
}

// Analysis é o registro semanal do funil de uma clínica
type Analysis struct {
	ID           string    `json:"id"`
	ClinicID     string    `json:"clinicId"`
	ClinicName   string    `json:"clinicName,omitempty"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Funnel       Funnel    `json:"funnel"`
	Costs        Costs     `json:"costs"`
	Observations string    `json:"observacoes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RateResult é uma taxa comparada com a meta correspondente
type RateResult struct {
	Rate    float64 `json:"taxa"`
	Goal    float64 `json:"meta"`
	GoalMet bool    `json:"atingiuMeta"`
}

type Rates struct {
	Scheduling RateResult `json:"taxaAgendamento"`
	Attendance RateResult `json:"taxaComparecimento"`
	Closing    RateResult `json:"taxaFechamento"`
}

// CalculateRates calcula as taxas do funil. Denominador zero gera taxa zero.
func CalculateRates(f Funnel, goals Goals) Rates {
	return Rates{
		Scheduling: newRateResult(utils.Percentage(f.Scheduled, f.LeadsCRM), goals.Scheduling),
		Attendance: newRateResult(utils.Percentage(f.Attended, f.Scheduled), goals.Attendance),
		Closing:    newRateResult(utils.Percentage(f.Sold, f.Attended), goals.Closing),
	}
}

func newRateResult(rate, goal float64) RateResult {
	rate = utils.RoundWithTwoDecimalPlace(rate)
	return RateResult{
		Rate:    rate,
		Goal:    goal,
		GoalMet: rate >= goal,
	}
}

// AnalysisReport é a análise acompanhada das taxas calculadas
type AnalysisReport struct {
	Analysis
	Rates Rates `json:"rates"`
}
