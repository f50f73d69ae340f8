package salesclient

import (
	"context"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/sales-charts-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita quanto do corpo de erro vai para a mensagem
const maxErrorBody = 512

func (c *SalesClient) GetSales(ctx context.Context) ([]domain.SaleRecord, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL da API de vendas")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if c.config.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.Errorf("requisição falhou com status: %s: %s", resp.Status, string(body))
	}

	var response []domain.SaleRecord
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if response == nil {
		response = []domain.SaleRecord{}
	}

	return response, nil
}
