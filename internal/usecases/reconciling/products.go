package reconciling

import (
	"context"

	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/repository"
	"github.com/sugarart/commerce-sync-api/internal/domain"
)

// ProductsPipeline sincroniza produtos. Não há chave estrangeira; o modo de
// escrita é configurável porque o esquema de destino pode não ter alvo de
// conflito. O padrão de produção é upsert.
type ProductsPipeline struct {
	client   sigecloudclient.Client
	products repository.ProductRepository
	mode     domain.WriteMode
}

func NewProductsPipeline(
	client sigecloudclient.Client,
	products repository.ProductRepository,
	mode domain.WriteMode,
) *ProductsPipeline {
	if mode != domain.WriteModeInsertNew {
		mode = domain.WriteModeUpsert
	}
	return &ProductsPipeline{
		client:   client,
		products: products,
		mode:     mode,
	}
}

func (p *ProductsPipeline) Entity() string {
	return "produtos"
}

func (p *ProductsPipeline) Mode() domain.WriteMode {
	return p.mode
}

func (p *ProductsPipeline) RequiresReferences() bool {
	return false
}

func (p *ProductsPipeline) LoadReferences(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error) {
	return nil, nil
}

func (p *ProductsPipeline) FetchPage(ctx context.Context, page, pageSize int) ([]sigecloudclient.Record, error) {
	return p.client.FetchProducts(ctx, page, pageSize)
}

func (p *ProductsPipeline) Transform(ctx context.Context, q postgres.Queryer, rec sigecloudclient.Record, refs domain.ReferenceMap) (*Item, *Skip) {
	codigo := rec.String("ID", "")
	if codigo == "" {
		return nil, &Skip{Reason: SkipMissingID}
	}

	nome := rec.String("Nome", "")
	if nome == "" {
		return nil, &Skip{Key: codigo, Reason: SkipMissingName}
	}

	preco, err := rec.Decimal("PrecoVenda")
	if err != nil {
		return nil, &Skip{Key: codigo, Reason: SkipInvalidValue}
	}

	product := &domain.Product{
		CodigoProduto: codigo,
		Nome:          nome,
		Preco:         preco,
		Categoria:     rec.String("Categoria", domain.CategoriaPadrao),
	}

	return &Item{Key: codigo, Value: product}, nil
}

func (p *ProductsPipeline) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return p.products.ExistingKeys(ctx, q)
}

func (p *ProductsPipeline) Write(ctx context.Context, q postgres.Queryer, items []*Item) (int, error) {
	products := make([]*domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, item.Value.(*domain.Product))
	}

	if p.mode == domain.WriteModeInsertNew {
		return p.products.InsertBatch(ctx, q, products)
	}
	return p.products.UpsertBatch(ctx, q, products)
}
