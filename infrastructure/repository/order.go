package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/internal/domain"
)

const pedidosTable = "pedidos"

type OrderRepository interface {
	ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, q postgres.Queryer, orders []*domain.Order) (int, error)
}

type orderRepository struct{}

func NewOrderRepository() OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return existingKeys(ctx, q, pedidosTable, "codigo_pedido")
}

func (r *orderRepository) UpsertBatch(ctx context.Context, q postgres.Queryer, orders []*domain.Order) (int, error) {
	if len(orders) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(pedidosTable).
		Columns(
			"codigo_pedido", "id_cliente", "vendedor", "valor_final",
			"data_envio", "uf", "periodicidade",
		).
		PlaceholderFormat(squirrel.Dollar).
		Suffix(`
			ON CONFLICT (codigo_pedido) DO UPDATE SET
				id_cliente = EXCLUDED.id_cliente,
				vendedor = EXCLUDED.vendedor,
				valor_final = EXCLUDED.valor_final,
				data_envio = EXCLUDED.data_envio,
				uf = EXCLUDED.uf,
				periodicidade = EXCLUDED.periodicidade
		`)

	for _, o := range orders {
		builder = builder.Values(
			o.CodigoPedido, o.IDCliente, o.Vendedor, o.ValorFinal,
			o.DataEnvio.Format(time.DateOnly), o.UF, o.Periodicidade,
		)
	}

	return execBatch(ctx, q, builder)
}
