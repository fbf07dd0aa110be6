package reconciling_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/sugarart/commerce-sync-api/infrastructure/repository/mocks"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling"
	"go.uber.org/mock/gomock"
)

func TestBoletosPipeline_Transform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoletos := repomocks.NewMockBoletoRepository(ctrl)
	mockCustomers := repomocks.NewMockCustomerRepository(ctrl)
	pipeline := reconciling.NewBoletosPipeline(nil, mockBoletos, mockCustomers, 90)

	refs := domain.ReferenceMap{"acme ltda": 7}

	tests := []struct {
		name     string
		record   map[string]any
		validate func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip)
	}{
		{
			name: "Boleto completo com sacado resolvido pela razão social",
			record: map[string]any{
				"Id":                  "BOL-500",
				"NumeroDocumento":     "NF-123",
				"Sacado":              "  ACME Ltda ",
				"ValorBoleto":         json.Number("150.75"),
				"MultaAposVencimento": json.Number("2.00"),
				"Pago":                false,
				"RemessaEnviada":      true,
				"DataEmissao":         "2024-04-01",
				"DataVencimento":      "2024-05-01",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				boleto := item.Value.(*domain.Boleto)
				require.NotNil(t, boleto.IDCliente)
				assert.Equal(t, int64(7), *boleto.IDCliente)
				assert.True(t, boleto.ValorBoleto.Equal(decimal.RequireFromString("150.75")))
				assert.True(t, boleto.Enviado)
				assert.False(t, boleto.Pago)
				require.NotNil(t, boleto.DataVencimento)
				assert.Equal(t, "2024-05-01", boleto.DataVencimento.Format("2006-01-02"))
			},
		},
		{
			name: "Id numérico e remessa enviada seguem os nomes da origem",
			record: map[string]any{
				"Id":             json.Number("981"),
				"ValorBoleto":    json.Number("150.00"),
				"RemessaEnviada": true,
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				assert.Equal(t, "981", item.Key)

				boleto := item.Value.(*domain.Boleto)
				assert.Equal(t, "981", boleto.CodigoBoleto)
				assert.True(t, boleto.Enviado)
			},
		},
		{
			name: "Sacado desconhecido entra com id_cliente nulo",
			record: map[string]any{
				"Id":          "BOL-501",
				"Sacado":      "Desconhecida SA",
				"ValorBoleto": json.Number("80.00"),
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				boleto := item.Value.(*domain.Boleto)
				assert.Nil(t, boleto.IDCliente)
			},
		},
		{
			name: "Descrição longa é truncada no limite da coluna",
			record: map[string]any{
				"Id":        "BOL-502",
				"Descricao": strings.Repeat("ã", 300),
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				boleto := item.Value.(*domain.Boleto)
				assert.Equal(t, 255, len([]rune(boleto.Descricao)))
			},
		},
		{
			name: "Datas ausentes ficam nulas sem descartar o registro",
			record: map[string]any{
				"Id":          "BOL-503",
				"ValorBoleto": json.Number("10.00"),
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				boleto := item.Value.(*domain.Boleto)
				assert.Nil(t, boleto.DataEmissao)
				assert.Nil(t, boleto.DataVencimento)
			},
		},
		{
			name: "Valor ilegível descarta o registro",
			record: map[string]any{
				"Id":          "BOL-504",
				"ValorBoleto": "cem reais",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.NotNil(t, skip)
				assert.Equal(t, reconciling.SkipInvalidValue, skip.Reason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, skip := pipeline.Transform(context.Background(), nil, tt.record, refs)
			tt.validate(t, item, skip)
		})
	}
}
