package loading

import (
	"context"
	"time"

	"github.com/vfg2006/sales-charts-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_loading.go -package=mocks

// SalesSource é a origem dos registros de venda. Pode falhar.
type SalesSource interface {
	// FetchSales retorna a lista completa de vendas na ordem da origem
	FetchSales(ctx context.Context) ([]domain.SaleRecord, error)
	// Name identifica a origem nos logs e métricas
	Name() string
}

// SnapshotLoader mantém o snapshot de vendas atual
type SnapshotLoader interface {
	// Current nunca retorna nil; antes da primeira busca retorna o snapshot vazio
	Current() *domain.SalesSnapshot

	// Refresh busca as vendas e publica um novo snapshot. Em caso de erro o anterior é mantido.
	Refresh(ctx context.Context) (*domain.SalesSnapshot, error)

	Status() LoaderStatus
}

type LoaderStatus struct {
	Source            string              `json:"source"`
	Snapshot          domain.SnapshotInfo `json:"snapshot"`
	LastAttemptAt     time.Time           `json:"last_attempt_at"`
	LastSuccessAt     time.Time           `json:"last_success_at"`
	LastError         string              `json:"last_error,omitempty"`
	ConsecutiveErrors int                 `json:"consecutive_errors"`
}
