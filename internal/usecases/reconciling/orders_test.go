package reconciling_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/sugarart/commerce-sync-api/infrastructure/repository/mocks"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling"
	"go.uber.org/mock/gomock"
)

func TestOrdersPipeline_Transform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrders := repomocks.NewMockOrderRepository(ctrl)
	mockCustomers := repomocks.NewMockCustomerRepository(ctrl)
	pipeline := reconciling.NewOrdersPipeline(nil, mockOrders, mockCustomers, 30)

	refs := domain.ReferenceMap{"cliente@exemplo.com": 42}

	tests := []struct {
		name     string
		record   map[string]any
		setup    func()
		validate func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip)
	}{
		{
			name: "Pedido completo com cliente resolvido pelo e-mail",
			record: map[string]any{
				"ID":           "PED-1001",
				"ClienteEmail": "cliente@exemplo.com",
				"Vendedor":     "Maria",
				"ValorFinal":   json.Number("199.90"),
				"DataEnvio":    "2024-03-10T14:30:00Z",
				"UF":           "SP",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				require.NotNil(t, item)
				assert.Equal(t, "PED-1001", item.Key)

				order := item.Value.(*domain.Order)
				require.NotNil(t, order.IDCliente)
				assert.Equal(t, int64(42), *order.IDCliente)
				// Valor monetário é exato, nunca passa por float
				assert.True(t, order.ValorFinal.Equal(decimal.RequireFromString("199.90")))
				assert.Equal(t, "SP", *order.UF)
				assert.Nil(t, order.Periodicidade)
			},
		},
		{
			name:   "Sem identificador o registro é descartado",
			record: map[string]any{"ValorFinal": json.Number("10.00")},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.NotNil(t, skip)
				assert.Equal(t, reconciling.SkipMissingID, skip.Reason)
			},
		},
		{
			name: "Data de envio ilegível descarta o registro",
			record: map[string]any{
				"ID":         "PED-1002",
				"ValorFinal": json.Number("10.00"),
				"DataEnvio":  "10/03/2024",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.NotNil(t, skip)
				assert.Equal(t, reconciling.SkipBadDate, skip.Reason)
				assert.Equal(t, "PED-1002", skip.Key)
			},
		},
		{
			name: "Valor negativo descarta o registro",
			record: map[string]any{
				"ID":         "PED-1003",
				"ValorFinal": json.Number("-5.00"),
				"DataEnvio":  "2024-03-10T14:30:00Z",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.NotNil(t, skip)
				assert.Equal(t, reconciling.SkipInvalidValue, skip.Reason)
			},
		},
		{
			name: "E-mail desconhecido cria cliente mínimo e registra no mapa",
			record: map[string]any{
				"ID":           "PED-1004",
				"Cliente":      "Fulano de Tal",
				"ClienteEmail": "Novo@Exemplo.com",
				"ValorFinal":   json.Number("50.00"),
				"DataEnvio":    "2024-03-11T09:00:00Z",
			},
			setup: func() {
				mockCustomers.EXPECT().
					UpsertMinimal(gomock.Any(), gomock.Any(), "novo@exemplo.com", "Fulano de Tal").
					Return(int64(77), nil)
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				order := item.Value.(*domain.Order)
				require.NotNil(t, order.IDCliente)
				assert.Equal(t, int64(77), *order.IDCliente)

				// O id sintetizado entra no mapa e o próximo pedido do
				// mesmo cliente resolve sem nova escrita
				id, ok := refs.Resolve("novo@exemplo.com")
				assert.True(t, ok)
				assert.Equal(t, int64(77), id)
			},
		},
		{
			name: "Falha ao sintetizar cliente vira descarte, nunca erro",
			record: map[string]any{
				"ID":           "PED-1005",
				"ClienteEmail": "outro@exemplo.com",
				"ValorFinal":   json.Number("50.00"),
				"DataEnvio":    "2024-03-11T09:00:00Z",
			},
			setup: func() {
				mockCustomers.EXPECT().
					UpsertMinimal(gomock.Any(), gomock.Any(), "outro@exemplo.com", "").
					Return(int64(0), errors.New("violação de constraint"))
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.NotNil(t, skip)
				assert.Equal(t, reconciling.SkipUnresolvedReference, skip.Reason)
			},
		},
		{
			name: "Sem e-mail o pedido entra com id_cliente nulo",
			record: map[string]any{
				"ID":         "PED-1006",
				"ValorFinal": json.Number("50.00"),
				"DataEnvio":  "2024-03-11T09:00:00Z",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				order := item.Value.(*domain.Order)
				assert.Nil(t, order.IDCliente)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			item, skip := pipeline.Transform(context.Background(), nil, tt.record, refs)
			tt.validate(t, item, skip)
		})
	}
}

func TestOrdersPipeline_SomaDeDecimaisPermaneceExata(t *testing.T) {
	// Dez parcelas de 0.10 fecham exatamente 1.00
	total := decimal.Zero
	for i := 0; i < 10; i++ {
		total = total.Add(decimal.RequireFromString("0.10"))
	}
	assert.True(t, total.Equal(decimal.RequireFromString("1.00")))
}
