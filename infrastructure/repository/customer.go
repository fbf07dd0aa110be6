package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/internal/domain"
)

const clientesTable = "clientes"

type CustomerRepository interface {
	// ReferenceMapByEmail carrega todos os pares (id, email) de uma vez.
	// O mapa é reconstruído a cada execução; nunca há cache entre execuções.
	ReferenceMapByEmail(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error)
	ReferenceMapByRazaoSocial(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error)
	ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, q postgres.Queryer, customers []*domain.Customer) (int, error)
	// UpsertMinimal garante a existência de um cliente só com e-mail e razão
	// social, devolvendo o id. Usado pela política de síntese dos pedidos.
	UpsertMinimal(ctx context.Context, q postgres.Queryer, email, razaoSocial string) (int64, error)
}

type customerRepository struct{}

func NewCustomerRepository() CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) ReferenceMapByEmail(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error) {
	return r.referenceMap(ctx, q, "email")
}

func (r *customerRepository) ReferenceMapByRazaoSocial(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error) {
	return r.referenceMap(ctx, q, "razao_social")
}

func (r *customerRepository) referenceMap(ctx context.Context, q postgres.Queryer, keyColumn string) (domain.ReferenceMap, error) {
	query, args, err := squirrel.
		Select("id", keyColumn).
		From(clientesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	refs := make(domain.ReferenceMap)
	for rows.Next() {
		var id int64
		var key *string
		if err := rows.Scan(&id, &key); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		if key == nil {
			continue // Chave natural nula fica fora do mapa
		}
		refs.Add(*key, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return refs, nil
}

func (r *customerRepository) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return existingKeys(ctx, q, clientesTable, "email")
}

func (r *customerRepository) UpsertBatch(ctx context.Context, q postgres.Queryer, customers []*domain.Customer) (int, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(clientesTable).
		Columns(
			"email", "razao_social", "fantasia", "inscricao_federal",
			"telefone", "celular", "pais", "uf", "cep", "bairro",
			"logradouro", "numero", "complemento", "cidade",
		).
		PlaceholderFormat(squirrel.Dollar).
		Suffix(`
			ON CONFLICT (email) DO UPDATE SET
				razao_social = EXCLUDED.razao_social,
				fantasia = EXCLUDED.fantasia,
				inscricao_federal = EXCLUDED.inscricao_federal,
				telefone = EXCLUDED.telefone,
				celular = EXCLUDED.celular,
				pais = EXCLUDED.pais,
				uf = EXCLUDED.uf,
				cep = EXCLUDED.cep,
				bairro = EXCLUDED.bairro,
				logradouro = EXCLUDED.logradouro,
				numero = EXCLUDED.numero,
				complemento = EXCLUDED.complemento,
				cidade = EXCLUDED.cidade
		`)

	for _, c := range customers {
		builder = builder.Values(
			c.Email, c.RazaoSocial, c.Fantasia, c.InscricaoFederal,
			c.Telefone, c.Celular, c.Pais, c.UF, c.CEP, c.Bairro,
			c.Logradouro, c.Numero, c.Complemento, c.Cidade,
		)
	}

	return execBatch(ctx, q, builder)
}

func (r *customerRepository) UpsertMinimal(ctx context.Context, q postgres.Queryer, email, razaoSocial string) (int64, error) {
	var razao *string
	if razaoSocial != "" {
		razao = &razaoSocial
	}

	query, args, err := squirrel.
		Insert(clientesTable).
		Columns("email", "razao_social").
		Values(email, razao).
		Suffix(`
			ON CONFLICT (email) DO UPDATE SET
				razao_social = COALESCE(clientes.razao_social, EXCLUDED.razao_social)
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return id, nil
}
