package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPhone(t *testing.T) {
	t.Run("Remove parênteses, espaços e hífens", func(t *testing.T) {
		cleaned := CleanPhone("(11) 98765-4321")
		require.NotNil(t, cleaned)
		assert.Equal(t, "11987654321", *cleaned)
	})

	t.Run("Vazio vira nulo", func(t *testing.T) {
		assert.Nil(t, CleanPhone(""))
	})

	t.Run("Somente pontuação vira nulo", func(t *testing.T) {
		assert.Nil(t, CleanPhone("( ) -"))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Texto curto passa intacto", func(t *testing.T) {
		assert.Equal(t, "boleto", Truncate("boleto", 255))
	})

	t.Run("Corta em runas, não em bytes", func(t *testing.T) {
		long := strings.Repeat("ç", 300)
		truncated := Truncate(long, 255)
		assert.Equal(t, 255, len([]rune(truncated)))
		assert.Equal(t, strings.Repeat("ç", 255), truncated)
	})
}
