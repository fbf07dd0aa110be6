package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para as datas retornadas pela API, do mais específico
// para o mais genérico.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeZone troca o sufixo literal "Z" pelo offset "+00:00" equivalente.
// A API retorna os dois formatos dependendo do endpoint.
func NormalizeZone(value string) string {
	if strings.HasSuffix(value, "Z") {
		return strings.TrimSuffix(value, "Z") + "+00:00"
	}
	return value
}

// ParseDate interpreta uma data em formato ISO-8601 (com ou sem hora e fuso).
// Uma string vazia resulta em (nil, nil): ausência de data não é erro.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	value = NormalizeZone(value)

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return &date, nil
		}
	}

	return nil, fmt.Errorf("formato de data não reconhecido: %q", value)
}
