package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson devolve o JSON indentado. Corpos que não são JSON voltam como
// texto puro, o que é útil para logar respostas de erro de provedores.
func PrettyJson(in any) string {
	var buffer []byte

	switch v := in.(type) {
	case []byte:
		buffer = v
	case string:
		buffer = []byte(v)
	default:
		b, err := json.Marshal(in)
		if err != nil {
			return ""
		}
		buffer = b
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "  "); err != nil {
		return string(buffer)
	}

	return out.String()
}
