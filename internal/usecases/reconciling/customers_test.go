package reconciling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/sugarart/commerce-sync-api/infrastructure/repository/mocks"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/internal/usecases/reconciling"
	"go.uber.org/mock/gomock"
)

func TestCustomersPipeline_Transform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCustomers := repomocks.NewMockCustomerRepository(ctrl)
	pipeline := reconciling.NewCustomersPipeline(nil, mockCustomers, 30)

	tests := []struct {
		name     string
		record   map[string]any
		validate func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip)
	}{
		{
			name: "E-mail é normalizado para minúsculas e sem espaços",
			record: map[string]any{
				"Email":       " JANE@Exemplo.COM ",
				"RazaoSocial": "Jane Ltda",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				assert.Equal(t, "jane@exemplo.com", item.Key)

				customer := item.Value.(*domain.Customer)
				assert.Equal(t, "jane@exemplo.com", customer.Email)
				assert.Equal(t, "Jane Ltda", *customer.RazaoSocial)
			},
		},
		{
			name:   "Sem e-mail não há chave de conflito: descarta",
			record: map[string]any{"RazaoSocial": "Anônimo SA"},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.NotNil(t, skip)
				assert.Equal(t, reconciling.SkipMissingEmail, skip.Reason)
			},
		},
		{
			name: "Fantasia, documento e número seguem os nomes da origem",
			record: map[string]any{
				"Email":            "a@b.com",
				"NomeFantasia":     "Loja X",
				"CNPJ_CPF":         "12.345.678/0001-90",
				"LogradouroNumero": "42",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				customer := item.Value.(*domain.Customer)
				require.NotNil(t, customer.Fantasia)
				assert.Equal(t, "Loja X", *customer.Fantasia)
				require.NotNil(t, customer.InscricaoFederal)
				assert.Equal(t, "12.345.678/0001-90", *customer.InscricaoFederal)
				require.NotNil(t, customer.Numero)
				assert.Equal(t, "42", *customer.Numero)
			},
		},
		{
			name: "Telefones perdem pontuação e vazios viram nulos",
			record: map[string]any{
				"Email":    "tel@exemplo.com",
				"Telefone": "(11) 5555-0101",
				"Celular":  "( ) -",
			},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				customer := item.Value.(*domain.Customer)
				require.NotNil(t, customer.Telefone)
				assert.Equal(t, "1155550101", *customer.Telefone)
				assert.Nil(t, customer.Celular)
			},
		},
		{
			name:   "Campos de endereço ausentes ficam nulos",
			record: map[string]any{"Email": "min@exemplo.com"},
			validate: func(t *testing.T, item *reconciling.Item, skip *reconciling.Skip) {
				require.Nil(t, skip)
				customer := item.Value.(*domain.Customer)
				assert.Nil(t, customer.UF)
				assert.Nil(t, customer.CEP)
				assert.Nil(t, customer.Cidade)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, skip := pipeline.Transform(context.Background(), nil, tt.record, nil)
			tt.validate(t, item, skip)
		})
	}
}
