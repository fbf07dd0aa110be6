package sigecloudclient

import (
	"context"
	"net/url"
	"strconv"
)

const (
	ordersResource    = "request/Pedidos/Pesquisar"
	productsResource  = "request/Produtos/GetAll"
	boletosResource   = "request/Boletos/Pesquisar"
	customersResource = "request/Pessoas/Pesquisar"
)

func pageParams(page, pageSize int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	return params
}

func (c *SigeCloudClient) FetchOrders(ctx context.Context, page, pageSize int, since string) ([]Record, error) {
	params := pageParams(page, pageSize)
	if since != "" {
		params.Set("dataInicial", since)
	}
	return c.fetch(ctx, ordersResource, params, false)
}

func (c *SigeCloudClient) FetchProducts(ctx context.Context, page, pageSize int) ([]Record, error) {
	return c.fetch(ctx, productsResource, pageParams(page, pageSize), true)
}

func (c *SigeCloudClient) FetchBoletos(ctx context.Context, page, pageSize int, since string) ([]Record, error) {
	params := pageParams(page, pageSize)
	params.Set("pago", "false") // Somente boletos em aberto
	if since != "" {
		params.Set("dataInicial", since)
	}
	return c.fetch(ctx, boletosResource, params, false)
}

func (c *SigeCloudClient) FetchCustomers(ctx context.Context, page, pageSize int, changedAfter string) ([]Record, error) {
	params := pageParams(page, pageSize)
	if changedAfter != "" {
		params.Set("alteradoapos", changedAfter)
	}
	return c.fetch(ctx, customersResource, params, false)
}
