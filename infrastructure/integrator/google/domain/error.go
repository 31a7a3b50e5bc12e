package googledomain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse é o envelope de erro das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ParseErrorResponse aceita o envelope simples e o formato em array que o
// searchStream devolve
func ParseErrorResponse(body []byte) (*ErrorDetails, bool) {
	var single ErrorResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Error.Code != 0 {
		return &single.Error, true
	}

	var list []ErrorResponse
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Error.Code != 0 {
		return &list[0].Error, true
	}

	return nil, false
}
