package reconciling

import (
	"context"
	"time"

	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/repository"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/pkg/log"
)

// OrdersPipeline sincroniza pedidos. Política de chave estrangeira: quando o
// e-mail do cliente não resolve, um cliente mínimo é criado na hora para
// garantir o id (nunca grava pedido com referência pendente nem descarta
// por falta de cadastro).
type OrdersPipeline struct {
	client    sigecloudclient.Client
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	sinceDays int
}

func NewOrdersPipeline(
	client sigecloudclient.Client,
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	sinceDays int,
) *OrdersPipeline {
	return &OrdersPipeline{
		client:    client,
		orders:    orders,
		customers: customers,
		sinceDays: sinceDays,
	}
}

func (p *OrdersPipeline) Entity() string {
	return "pedidos"
}

func (p *OrdersPipeline) Mode() domain.WriteMode {
	return domain.WriteModeUpsert
}

func (p *OrdersPipeline) RequiresReferences() bool {
	return true
}

func (p *OrdersPipeline) LoadReferences(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error) {
	return p.customers.ReferenceMapByEmail(ctx, q)
}

func (p *OrdersPipeline) FetchPage(ctx context.Context, page, pageSize int) ([]sigecloudclient.Record, error) {
	return p.client.FetchOrders(ctx, page, pageSize, sinceDate(p.sinceDays))
}

func (p *OrdersPipeline) Transform(ctx context.Context, q postgres.Queryer, rec sigecloudclient.Record, refs domain.ReferenceMap) (*Item, *Skip) {
	codigo := rec.String("ID", "")
	if codigo == "" {
		return nil, &Skip{Reason: SkipMissingID}
	}

	// Pedido exige data de envio válida
	dataEnvio, err := rec.Date("DataEnvio")
	if err != nil || dataEnvio == nil {
		return nil, &Skip{Key: codigo, Reason: SkipBadDate}
	}

	valorFinal, err := rec.Decimal("ValorFinal")
	if err != nil || valorFinal.IsNegative() {
		return nil, &Skip{Key: codigo, Reason: SkipInvalidValue}
	}

	var idCliente *int64
	email := rec.String("ClienteEmail", "")
	if id, ok := refs.Resolve(email); ok {
		idCliente = &id
	} else if domain.NormalizeNaturalKey(email) != "" {
		id, err := p.customers.UpsertMinimal(ctx, q, domain.NormalizeNaturalKey(email), rec.String("Cliente", ""))
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("codigo_pedido", codigo).
				Warn("Falha ao criar cliente mínimo para o pedido")
			return nil, &Skip{Key: codigo, Reason: SkipUnresolvedReference}
		}
		// Registra o id criado para que o mesmo cliente não seja
		// inserido de novo nos próximos registros da execução.
		refs.Add(email, id)
		idCliente = &id
	}

	order := &domain.Order{
		CodigoPedido:  codigo,
		IDCliente:     idCliente,
		Vendedor:      optString(rec, "Vendedor"),
		ValorFinal:    valorFinal,
		DataEnvio:     *dataEnvio,
		UF:            optString(rec, "UF"),
		Periodicidade: optString(rec, "Periodicidade"),
	}

	return &Item{Key: codigo, Value: order}, nil
}

func (p *OrdersPipeline) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return p.orders.ExistingKeys(ctx, q)
}

func (p *OrdersPipeline) Write(ctx context.Context, q postgres.Queryer, items []*Item) (int, error) {
	orders := make([]*domain.Order, 0, len(items))
	for _, item := range items {
		orders = append(orders, item.Value.(*domain.Order))
	}
	return p.orders.UpsertBatch(ctx, q, orders)
}

// sinceDate devolve a data de corte do filtro da origem: hoje menos days.
func sinceDate(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(time.DateOnly)
}

func optString(rec sigecloudclient.Record, key string) *string {
	value := rec.String(key, "")
	if value == "" {
		return nil
	}
	return &value
}
