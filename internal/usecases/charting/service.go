package charting

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/sales-charts-api/internal/domain"
)

type chartDefinition struct {
	kind  domain.ChartKind
	title string
	build func(records []domain.SaleRecord, dates *DateFormatter) domain.ChartDataset
}

var chartDefinitions = map[string]chartDefinition{
	ChartRegion: {
		kind:  domain.ChartKindDoughnut,
		title: "Total Sales by Region",
		build: func(records []domain.SaleRecord, _ *DateFormatter) domain.ChartDataset {
			return AssembleView(SalesByRegion(records), RegionStyle())
		},
	},
	ChartProduct: {
		kind:  domain.ChartKindBar,
		title: "Units Sold by Product",
		build: func(records []domain.SaleRecord, _ *DateFormatter) domain.ChartDataset {
			return AssembleView(UnitsByProduct(records), ProductStyle())
		},
	},
	ChartTrend: {
		kind:  domain.ChartKindLine,
		title: "Total Sales Over Time",
		build: func(records []domain.SaleRecord, dates *DateFormatter) domain.ChartDataset {
			return AssembleView(SalesOverTime(records, dates), TrendStyle())
		},
	},
	ChartMarginProfit: {
		kind:  domain.ChartKindRadar,
		title: "Operating Profit and Margin by Product",
		build: func(records []domain.SaleRecord, _ *DateFormatter) domain.ChartDataset {
			return AssemblePairs(MarginProfitPairs(records), MarginStyle(), ProfitStyle())
		},
	},
}

type Service struct {
	snapshots SnapshotProvider
	dates     *DateFormatter
}

func NewService(snapshots SnapshotProvider, dates *DateFormatter) ChartService {
	if dates == nil {
		dates = DefaultDateFormatter()
	}

	return &Service{
		snapshots: snapshots,
		dates:     dates,
	}
}

func (s *Service) SalesByRegion() domain.ChartDataset {
	return s.build(ChartRegion, s.records())
}

func (s *Service) UnitsByProduct() domain.ChartDataset {
	return s.build(ChartProduct, s.records())
}

func (s *Service) SalesOverTime() domain.ChartDataset {
	return s.build(ChartTrend, s.records())
}

func (s *Service) MarginAndProfit() domain.ChartDataset {
	return s.build(ChartMarginProfit, s.records())
}

func (s *Service) Chart(name string) (domain.ChartDataset, error) {
	if _, ok := chartDefinitions[name]; !ok {
		return domain.ChartDataset{}, fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
	return s.build(name, s.records()), nil
}

func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	snapshot := s.snapshot()
	charts := make([]domain.Chart, len(ChartNames))

	// Os gráficos são independentes e leem o mesmo snapshot imutável
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range ChartNames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			definition := chartDefinitions[name]
			charts[i] = domain.Chart{
				Name:  name,
				Kind:  definition.kind,
				Title: definition.title,
				Data:  definition.build(snapshot.Records, s.dates),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("erro ao montar o painel: %w", err)
	}

	return &domain.Dashboard{
		Snapshot: snapshot.Info(),
		Charts:   charts,
	}, nil
}

func (s *Service) build(name string, records []domain.SaleRecord) domain.ChartDataset {
	return chartDefinitions[name].build(records, s.dates)
}

func (s *Service) snapshot() *domain.SalesSnapshot {
	if s.snapshots == nil {
		return domain.EmptySnapshot()
	}

	snapshot := s.snapshots.Current()
	if snapshot == nil {
		return domain.EmptySnapshot()
	}
	return snapshot
}

func (s *Service) records() []domain.SaleRecord {
	return s.snapshot().Records
}
