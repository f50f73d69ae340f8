package charting

import (
	"context"
	"errors"

	"github.com/vfg2006/sales-charts-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_charting.go -package=mocks

const (
	ChartRegion       = "region"
	ChartProduct      = "product"
	ChartTrend        = "trend"
	ChartMarginProfit = "margin-profit"
)

// ChartNames lista os gráficos na ordem em que aparecem no painel
var ChartNames = []string{ChartRegion, ChartProduct, ChartTrend, ChartMarginProfit}

var ErrUnknownChart = errors.New("gráfico desconhecido")

// SnapshotProvider fornece o snapshot de vendas atual
type SnapshotProvider interface {
	Current() *domain.SalesSnapshot
}

// ChartService monta os gráficos a partir do snapshot atual. Cada chamada recalcula tudo.
type ChartService interface {
	SalesByRegion() domain.ChartDataset
	UnitsByProduct() domain.ChartDataset
	SalesOverTime() domain.ChartDataset
	MarginAndProfit() domain.ChartDataset

	// Chart resolve um gráfico pelo nome ou retorna ErrUnknownChart
	Chart(name string) (domain.ChartDataset, error)

	// Dashboard monta os quatro gráficos sobre o mesmo snapshot
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}
