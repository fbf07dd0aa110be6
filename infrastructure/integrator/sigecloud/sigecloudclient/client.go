package sigecloudclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sugarart/commerce-sync-api/internal/config"
	"github.com/sugarart/commerce-sync-api/pkg/log"
)

type Client interface {
	FetchOrders(ctx context.Context, page, pageSize int, since string) ([]Record, error)
	FetchProducts(ctx context.Context, page, pageSize int) ([]Record, error)
	FetchBoletos(ctx context.Context, page, pageSize int, since string) ([]Record, error)
	FetchCustomers(ctx context.Context, page, pageSize int, changedAfter string) ([]Record, error)
}

// TransportError indica falha na camada HTTP: status fora da faixa 2xx,
// timeout ou conexão recusada. Status 0 significa que nenhuma resposta chegou.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("sigecloud: falha de transporte: %s", e.Body)
	}
	return fmt.Sprintf("sigecloud: requisição falhou com status %d: %s", e.Status, e.Body)
}

// Temporary informa se vale a pena repetir a requisição.
func (e *TransportError) Temporary() bool {
	return e.Status == 0 || e.Status >= 500
}

type SigeCloudClient struct {
	httpClient *http.Client
	cfg        config.SigeCloud
}

func NewClient(cfg *config.Config) Client {
	return &SigeCloudClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.SigeCloud.TimeoutSeconds) * time.Second,
		},
		cfg: cfg.SigeCloud,
	}
}

// fetch executa o GET com retry exponencial limitado. Erros 4xx não são
// repetidos; timeouts e 5xx são, até RetryMax tentativas adicionais.
func (c *SigeCloudClient) fetch(ctx context.Context, resource string, params url.Values, enveloped bool) ([]Record, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = params.Encode()

	var records []Record
	operation := func() error {
		recs, err := c.doRequest(ctx, endpoint.String(), enveloped)
		if err != nil {
			var transportErr *TransportError
			if errors.As(err, &transportErr) && !transportErr.Temporary() {
				return backoff.Permanent(err)
			}
			log.L.WithError(err).WithField("resource", resource).Warn("Falha temporária na API SigeCloud; tentando novamente")
			return err
		}
		records = recs
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.cfg.RetryMax)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *SigeCloudClient) doRequest(ctx context.Context, endpoint string, enveloped bool) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization-Token", c.cfg.Token)
	req.Header.Set("User", c.cfg.User)
	req.Header.Set("App", c.cfg.App)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Body: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{Status: resp.StatusCode, Body: string(body)}
	}

	return decodeRecords(resp.Body, enveloped)
}

// decodeRecords decodifica a resposta preservando números como json.Number.
// Valores monetários nunca passam por float64 no caminho até o decimal.
func decodeRecords(r io.Reader, enveloped bool) ([]Record, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	// Produtos chegam embrulhados em {"data": [...]}; as demais entidades
	// retornam a lista diretamente.
	if enveloped {
		var payload struct {
			Data []Record `json:"data"`
		}
		if err := decoder.Decode(&payload); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar a resposta")
		}
		return payload.Data, nil
	}

	var records []Record
	if err := decoder.Decode(&records); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}
	return records, nil
}
