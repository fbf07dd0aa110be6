package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é um pedido validado. CodigoPedido é o identificador do sistema de
// origem e serve de chave de conflito; a data de envio é obrigatória.
type Order struct {
	CodigoPedido  string
	IDCliente     *int64
	Vendedor      *string
	ValorFinal    decimal.Decimal
	DataEnvio     time.Time
	UF            *string
	Periodicidade *string
}
