package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/internal/domain"
)

const produtosTable = "produtos"

type ProductRepository interface {
	ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error)
	// InsertBatch insere sem resolução de conflito; pressupõe que o chamador
	// já filtrou as chaves existentes.
	InsertBatch(ctx context.Context, q postgres.Queryer, products []*domain.Product) (int, error)
	UpsertBatch(ctx context.Context, q postgres.Queryer, products []*domain.Product) (int, error)
}

type productRepository struct{}

func NewProductRepository() ProductRepository {
	return &productRepository{}
}

func (r *productRepository) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return existingKeys(ctx, q, produtosTable, "codigo_produto")
}

func (r *productRepository) InsertBatch(ctx context.Context, q postgres.Queryer, products []*domain.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}
	return execBatch(ctx, q, r.insertBuilder(products))
}

func (r *productRepository) UpsertBatch(ctx context.Context, q postgres.Queryer, products []*domain.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	builder := r.insertBuilder(products).Suffix(`
		ON CONFLICT (codigo_produto) DO UPDATE SET
			nome = EXCLUDED.nome,
			preco = EXCLUDED.preco,
			categoria = EXCLUDED.categoria
	`)

	return execBatch(ctx, q, builder)
}

func (r *productRepository) insertBuilder(products []*domain.Product) squirrel.InsertBuilder {
	builder := squirrel.
		Insert(produtosTable).
		Columns("codigo_produto", "nome", "preco", "categoria").
		PlaceholderFormat(squirrel.Dollar)

	for _, p := range products {
		builder = builder.Values(p.CodigoProduto, p.Nome, p.Preco, p.Categoria)
	}

	return builder
}
