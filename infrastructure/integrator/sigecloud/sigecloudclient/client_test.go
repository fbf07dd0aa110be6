package sigecloudclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		SigeCloud: config.SigeCloud{
			BaseURL:        baseURL,
			Token:          "token-de-teste",
			User:           "usuario@exemplo.com",
			App:            "API",
			PageSize:       100,
			TimeoutSeconds: 5,
			RetryMax:       2,
		},
	}
}

func TestClient_FetchOrders_CabecalhosEParametros(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/request/Pedidos/Pesquisar", r.URL.Path)
		assert.Equal(t, "token-de-teste", r.Header.Get("Authorization-Token"))
		assert.Equal(t, "usuario@exemplo.com", r.Header.Get("User"))
		assert.Equal(t, "API", r.Header.Get("App"))

		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "100", query.Get("pageSize"))
		assert.Equal(t, "2024-03-01", query.Get("dataInicial"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"ID": "PED-1", "ValorFinal": 199.90}]`))
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	records, err := client.FetchOrders(context.Background(), 2, 100, "2024-03-01")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "PED-1", records[0].String("ID", ""))

	// O número chega como json.Number e o decimal preserva os centavos
	valor, err := records[0].Decimal("ValorFinal")
	require.NoError(t, err)
	assert.True(t, valor.Equal(decimal.RequireFromString("199.90")))
}

func TestClient_FetchProducts_EnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/request/Produtos/GetAll", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"ID": "SKU-1"}, {"ID": "SKU-2"}]}`))
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	records, err := client.FetchProducts(context.Background(), 1, 100)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "SKU-2", records[1].String("ID", ""))
}

func TestClient_FetchBoletos_SomenteEmAberto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "false", r.URL.Query().Get("pago"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	_, err := client.FetchBoletos(context.Background(), 1, 100, "2024-01-01")
	require.NoError(t, err)
}

func TestClient_FetchCustomers_FiltroIncremental(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/request/Pessoas/Pesquisar", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("alteradoapos"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	_, err := client.FetchCustomers(context.Background(), 1, 100, "2024-03-01")
	require.NoError(t, err)
}

func TestClient_RetentaEm500EDepoisSucede(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"ID": "PED-1"}]`))
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	records, err := client.FetchOrders(context.Background(), 1, 100, "")

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, records, 1)
}

func TestClient_NaoRetentaEm4xx(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`credenciais inválidas`))
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	_, err := client.FetchOrders(context.Background(), 1, 100, "")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var transportErr *sigecloudclient.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.StatusUnauthorized, transportErr.Status)
	assert.False(t, transportErr.Temporary())
}

func TestClient_EsgotaAsTentativasEmFalhaPersistente(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := sigecloudclient.NewClient(testConfig(server.URL))
	_, err := client.FetchOrders(context.Background(), 1, 100, "")

	require.Error(t, err)
	// RetryMax tentativas adicionais além da original
	assert.Equal(t, 3, attempts)
}
