package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Sufixo Z e offset explícito são a mesma data", func(t *testing.T) {
		withZ, err := ParseDate("2024-03-10T14:30:00Z")
		require.NoError(t, err)
		withOffset, err := ParseDate("2024-03-10T14:30:00+00:00")
		require.NoError(t, err)

		assert.True(t, withZ.Equal(*withOffset))
	})

	t.Run("Data sem hora", func(t *testing.T) {
		date, err := ParseDate("2024-03-10")
		require.NoError(t, err)
		assert.Equal(t, "2024-03-10", date.Format("2006-01-02"))
	})

	t.Run("Data com fração de segundo", func(t *testing.T) {
		date, err := ParseDate("2024-03-10T14:30:00.123456Z")
		require.NoError(t, err)
		assert.Equal(t, 2024, date.Year())
	})

	t.Run("Fração de segundo sem fuso", func(t *testing.T) {
		date, err := ParseDate("2024-05-01T10:00:00.123")
		require.NoError(t, err)
		assert.Equal(t, 123000000, date.Nanosecond())
	})

	t.Run("String vazia não é erro", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("Formato desconhecido é erro", func(t *testing.T) {
		_, err := ParseDate("10/03/2024")
		assert.Error(t, err)
	})
}

func TestNormalizeZone(t *testing.T) {
	assert.Equal(t, "2024-03-10T14:30:00+00:00", NormalizeZone("2024-03-10T14:30:00Z"))
	assert.Equal(t, "2024-03-10T14:30:00-03:00", NormalizeZone("2024-03-10T14:30:00-03:00"))
}
