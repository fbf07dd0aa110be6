package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/internal/domain"
)

const boletosTable = "boletos"

type BoletoRepository interface {
	ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, q postgres.Queryer, boletos []*domain.Boleto) (int, error)
}

type boletoRepository struct{}

func NewBoletoRepository() BoletoRepository {
	return &boletoRepository{}
}

func (r *boletoRepository) ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error) {
	return existingKeys(ctx, q, boletosTable, "codigo_boleto")
}

func (r *boletoRepository) UpsertBatch(ctx context.Context, q postgres.Queryer, boletos []*domain.Boleto) (int, error) {
	if len(boletos) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(boletosTable).
		Columns(
			"codigo_boleto", "numero_documento", "valor_boleto", "id_cliente",
			"pago", "cancelado", "estornado", "enviado", "retorno_recebido",
			"descricao", "data_emissao", "data_vencimento", "multa_apos_vencimento",
		).
		PlaceholderFormat(squirrel.Dollar).
		Suffix(`
			ON CONFLICT (codigo_boleto) DO UPDATE SET
				numero_documento = EXCLUDED.numero_documento,
				valor_boleto = EXCLUDED.valor_boleto,
				id_cliente = EXCLUDED.id_cliente,
				pago = EXCLUDED.pago,
				cancelado = EXCLUDED.cancelado,
				estornado = EXCLUDED.estornado,
				enviado = EXCLUDED.enviado,
				retorno_recebido = EXCLUDED.retorno_recebido,
				descricao = EXCLUDED.descricao,
				data_emissao = EXCLUDED.data_emissao,
				data_vencimento = EXCLUDED.data_vencimento,
				multa_apos_vencimento = EXCLUDED.multa_apos_vencimento
		`)

	for _, b := range boletos {
		builder = builder.Values(
			b.CodigoBoleto, b.NumeroDocumento, b.ValorBoleto, b.IDCliente,
			b.Pago, b.Cancelado, b.Estornado, b.Enviado, b.RetornoRecebido,
			b.Descricao, b.DataEmissao, b.DataVencimento, b.MultaAposVencimento,
		)
	}

	return execBatch(ctx, q, builder)
}
