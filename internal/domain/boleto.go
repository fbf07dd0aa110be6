package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Boleto é um título de cobrança validado. Valores monetários ficam em
// decimal de ponto fixo para não acumular erro de arredondamento.
type Boleto struct {
	CodigoBoleto        string
	NumeroDocumento     string
	ValorBoleto         decimal.Decimal
	IDCliente           *int64
	Pago                bool
	Cancelado           bool
	Estornado           bool
	Enviado             bool
	RetornoRecebido     bool
	Descricao           string
	DataEmissao         *time.Time
	DataVencimento      *time.Time
	MultaAposVencimento decimal.Decimal
}
