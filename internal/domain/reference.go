package domain

import "strings"

// ReferenceMap mapeia uma chave natural normalizada (e-mail ou razão social)
// para o id interno do cliente. É reconstruído a cada execução de
// sincronização a partir do estado atual da tabela de clientes.
type ReferenceMap map[string]int64

// NormalizeNaturalKey remove espaços das pontas e converte para minúsculas.
func NormalizeNaturalKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Resolve procura a chave natural já normalizando maiúsculas e espaços.
func (m ReferenceMap) Resolve(key string) (int64, bool) {
	id, ok := m[NormalizeNaturalKey(key)]
	return id, ok
}

// Add registra uma chave natural no mapa. Chaves vazias são ignoradas,
// nunca geram erro.
func (m ReferenceMap) Add(key string, id int64) {
	normalized := NormalizeNaturalKey(key)
	if normalized == "" {
		return
	}
	m[normalized] = id
}
