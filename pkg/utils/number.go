package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseLeadingInt lê o inteiro no começo da string, ignorando espaços iniciais
// e o que vier depois dos dígitos ("12.9" vira 12). ok é falso quando não há
// nenhum dígito.
func ParseLeadingInt(value string) (n int64, ok bool) {
	s := strings.TrimLeft(value, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Percentage devolve part/total*100, ou zero quando total é zero
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
