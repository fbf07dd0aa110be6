package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateToken gera o token de correlação embutido no assunto dos e-mails
// de retorno. Precisa ser pesquisável via SEARCH SUBJECT, então fica só com
// caracteres alfanuméricos.
func GenerateToken() (string, error) {
	return gonanoid.Generate(characters, 12)
}
