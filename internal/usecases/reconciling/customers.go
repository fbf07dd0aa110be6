package reconciling

import (
	"context"
	"strings"

	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/repository"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/pkg/utils"
)

// CustomersPipeline sincroniza o cadastro de clientes usando o filtro
// incremental da origem (somente alterados após a data de corte). É a base
// das referências usadas por pedidos e boletos.
type CustomersPipeline struct {
	client    sigecloudclient.Client
	customers repository.CustomerRepository
	sinceDays int
}

func NewCustomersPipeline(
	client sigecloudclient.Client,
	customers repository.CustomerRepository,
	sinceDays int,
) *CustomersPipeline {
	return &CustomersPipeline{
		client:    client,
		customers: customers,
		sinceDays: sinceDays,
	}
}

func (p *CustomersPipeline) Entity() string {
	return "clientes"
}

func (p *CustomersPipeline) Mode() domain.WriteMode {
	return domain.WriteModeUpsert
}

func (p *CustomersPipeline) RequiresReferences() bool {
	return false
}

func (p *CustomersPipeline) LoadReferences(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error) {
	return nil, nil
}

func (p *CustomersPipeline) FetchPage(ctx context.Context, page, pageSize int) ([]sigecloudclient.Record, error) {
	return p.client.FetchCustomers(ctx, page, pageSize, sinceDate(p.sinceDays))
}

func (p *CustomersPipeline) Transform(ctx context.Context, q postgres.Queryer, rec sigecloudclient.Record, refs domain.ReferenceMap) (*Item, *Skip) {
	email := strings.ToLower(strings.TrimSpace(rec.String("Email", "")))
	if email == "" {
		// Sem e-mail não há chave de conflito
		return nil, &Skip{Reason: SkipMissingEmail}
	}

	customer := &domain.Customer{
		Email:            email,
		RazaoSocial:      optString(rec, "RazaoSocial"),
		Fantasia:         optString(rec, "NomeFantasia"),
		InscricaoFederal: optString(rec, "CNPJ_CPF"),
		Telefone:         utils.CleanPhone(rec.String("Telefone", "")),
		Celular:          utils.CleanPhone(rec.String("Celular", "")),
		Pais:             optString(rec, "Pais"),
		UF:               optString(rec, "UF"),
		CEP:              optString(rec, "CEP"),
		Bairro:           optString(rec, "Bairro"),
		Logradouro:       optString(rec, "Logradouro"),
		Numero:           optString(rec, "LogradouroNumero"),
		Complemento:      optString(rec, "Complemento"),
		Cidade:           optString(rec, "Cidade"),
	}

	return &Item{Key: email, Value: customer}, nil
}

func (p *CustomersPipeline) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return p.customers.ExistingKeys(ctx, q)
}

func (p *CustomersPipeline) Write(ctx context.Context, q postgres.Queryer, items []*Item) (int, error) {
	customers := make([]*domain.Customer, 0, len(items))
	for _, item := range items {
		customers = append(customers, item.Value.(*domain.Customer))
	}
	return p.customers.UpsertBatch(ctx, q, customers)
}
