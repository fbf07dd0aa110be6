package sigecloudclient

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sugarart/commerce-sync-api/pkg/utils"
)

// Record é um registro semi-estruturado retornado pela API. Nenhum campo tem
// presença ou tipo garantido; os acessores abaixo fazem o defaulting
// explícito por campo.
type Record map[string]any

// String retorna o campo como texto. Números viram sua representação
// decimal; qualquer outro tipo cai no default.
func (r Record) String(key, def string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return def
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return def
	}
}

// Int retorna o campo como inteiro, descartando casas decimais.
func (r Record) Int(key string, def int64) int64 {
	value, ok := r[key]
	if !ok || value == nil {
		return def
	}

	switch v := value.(type) {
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

// Bool retorna o campo como booleano, aceitando também "true"/"false".
func (r Record) Bool(key string, def bool) bool {
	value, ok := r[key]
	if !ok || value == nil {
		return def
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return def
}

// Decimal converte o campo monetário via intermediário string, nunca por
// ponto flutuante binário. Campo ausente ou vazio vale zero.
func (r Record) Decimal(key string) (decimal.Decimal, error) {
	value, ok := r[key]
	if !ok || value == nil {
		return decimal.Zero, nil
	}

	switch v := value.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(trimmed)
	default:
		return decimal.Zero, fmt.Errorf("campo %q não é numérico", key)
	}
}

// Date interpreta o campo como data ISO-8601. Ausência de data resulta em
// (nil, nil); só formato irreconhecível é erro.
func (r Record) Date(key string) (*time.Time, error) {
	return utils.ParseDate(r.String(key, ""))
}
