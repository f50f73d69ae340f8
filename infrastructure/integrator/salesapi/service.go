package salesapi

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-charts-api/infrastructure/integrator/salesapi/salesclient"
	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/domain"
)

type SalesAPIIntegrator interface {
	FetchSales(ctx context.Context) ([]domain.SaleRecord, error)
	Name() string
}

type SalesAPIService struct {
	cfg    config.SalesAPI
	Client salesclient.Client
}

func New(cfg config.SalesAPI, client salesclient.Client) SalesAPIIntegrator {
	return &SalesAPIService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SalesAPIService) Name() string {
	return config.SourceHTTP
}

func (s *SalesAPIService) FetchSales(ctx context.Context) ([]domain.SaleRecord, error) {
	records, err := s.Client.GetSales(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar vendas em %s", s.cfg.URL)
	}

	return records, nil
}
