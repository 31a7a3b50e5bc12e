package domain

import (
	"errors"
	"fmt"
)

const (
	ProviderGoogle = "google"
	ProviderMeta   = "meta"
)

// ErrUpstream identifica falhas nas APIs de anúncios via errors.Is
var ErrUpstream = errors.New("upstream request failed")

// UpstreamError descreve uma chamada mal sucedida a um provedor externo.
// StatusCode é zero quando não houve resposta HTTP.
type UpstreamError struct {
	Provider   string
	Operation  string
	StatusCode int
	Code       string
	Message    string
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Provider, e.Operation, e.StatusCode)
	if e.Code != "" {
		msg += " code " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUpstream
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
