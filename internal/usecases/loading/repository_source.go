package loading

import (
	"context"

	"github.com/vfg2006/sales-charts-api/infrastructure/repository"
	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/domain"
)

// RepositorySource lê as vendas da tabela do Postgres
type RepositorySource struct {
	repo repository.SaleRepository
}

func NewRepositorySource(repo repository.SaleRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) Name() string {
	return config.SourcePostgres
}

func (s *RepositorySource) FetchSales(ctx context.Context) ([]domain.SaleRecord, error) {
	return s.repo.ListSales(ctx)
}
