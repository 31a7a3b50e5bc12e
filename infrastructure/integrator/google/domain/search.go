package googledomain

import (
	"bytes"
	"strconv"
	"strings"
)

// Int64String decodifica int64 que a API REST do Google Ads serializa como string
type Int64String int64

func (n *Int64String) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return err
	}
	*n = Int64String(v)
	return nil
}

type SearchRequest struct {
	Query string `json:"query"`
}

// SearchStreamBatch é um lote da resposta de googleAds:searchStream, que chega
// como um array JSON de lotes
type SearchStreamBatch struct {
	Results   []SearchResult `json:"results"`
	FieldMask string         `json:"fieldMask,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
}

type SearchResult struct {
	Metrics Metrics `json:"metrics"`
}

type Metrics struct {
	CostMicros     Int64String `json:"costMicros"`
	AllConversions float64     `json:"allConversions"`
}

// FirstMetrics devolve as métricas da primeira linha do primeiro lote
func FirstMetrics(batches []SearchStreamBatch) (Metrics, bool) {
	if len(batches) == 0 || len(batches[0].Results) == 0 {
		return Metrics{}, false
	}
	return batches[0].Results[0].Metrics, true
}

// UserInfo é a resposta do endpoint OpenID userinfo
type UserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
