package reconciling

import (
	"context"

	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/infrastructure/repository"
	"github.com/sugarart/commerce-sync-api/internal/domain"
	"github.com/sugarart/commerce-sync-api/pkg/utils"
)

const descricaoMaxLen = 255

// BoletosPipeline sincroniza boletos em aberto. A referência ao cliente é
// resolvida pelo sacado (razão social); quando não resolve, o boleto entra
// com id_cliente nulo em vez de ser descartado.
type BoletosPipeline struct {
	client    sigecloudclient.Client
	boletos   repository.BoletoRepository
	customers repository.CustomerRepository
	sinceDays int
}

func NewBoletosPipeline(
	client sigecloudclient.Client,
	boletos repository.BoletoRepository,
	customers repository.CustomerRepository,
	sinceDays int,
) *BoletosPipeline {
	return &BoletosPipeline{
		client:    client,
		boletos:   boletos,
		customers: customers,
		sinceDays: sinceDays,
	}
}

func (p *BoletosPipeline) Entity() string {
	return "boletos"
}

func (p *BoletosPipeline) Mode() domain.WriteMode {
	return domain.WriteModeUpsert
}

func (p *BoletosPipeline) RequiresReferences() bool {
	return true
}

func (p *BoletosPipeline) LoadReferences(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error) {
	return p.customers.ReferenceMapByRazaoSocial(ctx, q)
}

func (p *BoletosPipeline) FetchPage(ctx context.Context, page, pageSize int) ([]sigecloudclient.Record, error) {
	return p.client.FetchBoletos(ctx, page, pageSize, sinceDate(p.sinceDays))
}

func (p *BoletosPipeline) Transform(ctx context.Context, q postgres.Queryer, rec sigecloudclient.Record, refs domain.ReferenceMap) (*Item, *Skip) {
	codigo := rec.String("Id", "")
	if codigo == "" {
		return nil, &Skip{Reason: SkipMissingID}
	}

	valor, err := rec.Decimal("ValorBoleto")
	if err != nil || valor.IsNegative() {
		return nil, &Skip{Key: codigo, Reason: SkipInvalidValue}
	}

	multa, err := rec.Decimal("MultaAposVencimento")
	if err != nil {
		return nil, &Skip{Key: codigo, Reason: SkipInvalidValue}
	}

	dataEmissao, err := rec.Date("DataEmissao")
	if err != nil {
		return nil, &Skip{Key: codigo, Reason: SkipBadDate}
	}
	dataVencimento, err := rec.Date("DataVencimento")
	if err != nil {
		return nil, &Skip{Key: codigo, Reason: SkipBadDate}
	}

	var idCliente *int64
	if id, ok := refs.Resolve(rec.String("Sacado", "")); ok {
		idCliente = &id
	}

	boleto := &domain.Boleto{
		CodigoBoleto:        codigo,
		NumeroDocumento:     rec.String("NumeroDocumento", ""),
		ValorBoleto:         valor,
		IDCliente:           idCliente,
		Pago:                rec.Bool("Pago", false),
		Cancelado:           rec.Bool("Cancelado", false),
		Estornado:           rec.Bool("Estornado", false),
		Enviado:             rec.Bool("RemessaEnviada", false),
		RetornoRecebido:     rec.Bool("RetornoRecebido", false),
		Descricao:           utils.Truncate(rec.String("Descricao", ""), descricaoMaxLen),
		DataEmissao:         dataEmissao,
		DataVencimento:      dataVencimento,
		MultaAposVencimento: multa,
	}

	return &Item{Key: codigo, Value: boleto}, nil
}

func (p *BoletosPipeline) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return p.boletos.ExistingKeys(ctx, q)
}

func (p *BoletosPipeline) Write(ctx context.Context, q postgres.Queryer, items []*Item) (int, error) {
	boletos := make([]*domain.Boleto, 0, len(items))
	for _, item := range items {
		boletos = append(boletos, item.Value.(*domain.Boleto))
	}
	return p.boletos.UpsertBatch(ctx, q, boletos)
}
