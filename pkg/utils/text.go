package utils

import "regexp"

var phonePunctuation = regexp.MustCompile(`[()\s-]`)

// CleanPhone remove parênteses, espaços e hífens de um número de telefone.
// Retorna nil quando não sobra nenhum dígito.
func CleanPhone(phone string) *string {
	if phone == "" {
		return nil
	}

	cleaned := phonePunctuation.ReplaceAllString(phone, "")
	if cleaned == "" {
		return nil
	}

	return &cleaned
}

// Truncate corta o texto no limite da coluna de destino, preservando runas.
func Truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}
