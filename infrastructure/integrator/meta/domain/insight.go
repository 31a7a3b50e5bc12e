package metadomain

import (
	"bytes"
	"strings"
)

// NumericString aceita valores que a Graph API devolve ora como string, ora
// como número
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	*n = NumericString(strings.Trim(string(data), `"`))
	return nil
}

func (n NumericString) String() string {
	return string(n)
}

type Paging struct {
	Next string `json:"next,omitempty"`
}

// AccountInsight é uma linha de act_<id>/insights no nível da conta
type AccountInsight struct {
	Spend     NumericString `json:"spend"`
	DateStart string        `json:"date_start"`
	DateStop  string        `json:"date_stop"`
}

type AccountInsightResponse struct {
	Data   []AccountInsight `json:"data"`
	Paging Paging           `json:"paging"`
}

// CampaignResult é uma linha de insights no nível de campanha com o campo results
type CampaignResult struct {
	CampaignName string        `json:"campaign_name"`
	Results      []ResultEntry `json:"results"`
}

type ResultEntry struct {
	Indicator string        `json:"indicator"`
	Values    []ResultValue `json:"values"`
}

type ResultValue struct {
	Value NumericString `json:"value"`
}

type CampaignResultResponse struct {
	Data   []CampaignResult `json:"data"`
	Paging Paging           `json:"paging"`
}

// TopIndicator é o indicador do primeiro resultado da campanha
func (c CampaignResult) TopIndicator() string {
	if len(c.Results) == 0 {
		return ""
	}
	return c.Results[0].Indicator
}

// TopValue é o primeiro valor do primeiro resultado. ok é falso quando a
// linha não tem valor.
func (c CampaignResult) TopValue() (value string, ok bool) {
	if len(c.Results) == 0 || len(c.Results[0].Values) == 0 {
		return "", false
	}
	return c.Results[0].Values[0].Value.String(), true
}
