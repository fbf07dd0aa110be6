package domain

import "github.com/shopspring/decimal"

// CategoriaPadrao é usada quando o produto chega sem categoria.
const CategoriaPadrao = "Sem Categoria"

type Product struct {
	CodigoProduto string
	Nome          string
	Preco         decimal.Decimal
	Categoria     string
}
