package salesclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/domain"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	GetSales(ctx context.Context) ([]domain.SaleRecord, error)
}

type SalesClient struct {
	httpClient *http.Client
	config     config.SalesAPI
}

// NewClient cria o cliente da API de vendas
func NewClient(cfg config.SalesAPI) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &SalesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
