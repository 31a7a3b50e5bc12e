package utils

import (
	"regexp"
	"time"
)

// Datas ISO restritas ao século 21, no mesmo formato aceito pelo painel.
var isoDateRegex = regexp.MustCompile(`^20\d{2}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// IsISODate verifica o formato YYYY-MM-DD e se a data existe no calendário
func IsISODate(value string) bool {
	if !isoDateRegex.MatchString(value) {
		return false
	}
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}
