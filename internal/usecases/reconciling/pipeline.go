package reconciling

import (
	"context"

	"github.com/sugarart/commerce-sync-api/infrastructure/database/postgres"
	"github.com/sugarart/commerce-sync-api/infrastructure/integrator/sigecloud/sigecloudclient"
	"github.com/sugarart/commerce-sync-api/internal/domain"
)

// Motivos de descarte de registros individuais. Descartes nunca interrompem
// o lote; são apenas contabilizados no resumo.
const (
	SkipMissingID           = "missing id"
	SkipMissingEmail        = "missing email"
	SkipMissingName         = "missing name"
	SkipBadDate             = "bad date"
	SkipInvalidValue        = "invalid value"
	SkipDuplicateInBatch    = "duplicate in batch"
	SkipAlreadyExists       = "already exists"
	SkipUnresolvedReference = "unresolved reference"
)

// Skip registra a exclusão de um registro com seu motivo.
type Skip struct {
	Key    string
	Reason string
}

// Item é um registro de domínio validado, pronto para escrita, acompanhado
// da chave externa usada para deduplicação e resolução de conflito.
type Item struct {
	Key   string
	Value any
}

// Pipeline é o adaptador por entidade que o motor de reconciliação
// orquestra: busca de páginas, resolução de referências, transformação e
// escrita em lote.
type Pipeline interface {
	Entity() string
	Mode() domain.WriteMode

	// RequiresReferences indica se a execução precisa do mapa de clientes.
	// Entidades sem chave estrangeira pulam o estado de resolução.
	RequiresReferences() bool
	LoadReferences(ctx context.Context, q postgres.Queryer) (domain.ReferenceMap, error)

	FetchPage(ctx context.Context, page, pageSize int) ([]sigecloudclient.Record, error)

	// Transform valida e converte um registro bruto. Erros de campo viram
	// Skip; nunca propagam para o motor.
	Transform(ctx context.Context, q postgres.Queryer, rec sigecloudclient.Record, refs domain.ReferenceMap) (*Item, *Skip)

	// ExistingKeys é consultado apenas no modo insert-only, para o
	// pré-filtro de chaves já gravadas.
	ExistingKeys(ctx context.Context, q postgres.Queryer) (map[string]struct{}, error)

	Write(ctx context.Context, q postgres.Queryer, items []*Item) (int, error)
}
