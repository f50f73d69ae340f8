package charting

import "github.com/vfg2006/sales-charts-api/internal/domain"

// Paleta fixa dos gráficos
const (
	colorRose      = "#FF6384"
	colorBlue      = "#36A2EB"
	colorYellow    = "#FFCE56"
	colorLightBlue = "#42A5F5"
	colorYellowBg  = "rgba(255, 206, 86, 0.6)"
	colorBlueBg    = "rgba(54, 162, 235, 0.6)"
)

// SeriesStyle é o rótulo e as cores de uma série
type SeriesStyle struct {
	Label                string
	BackgroundColor      domain.Colors
	BorderColor          domain.Colors
	PointBackgroundColor domain.Colors
	Fill                 *bool
}

func RegionStyle() SeriesStyle {
	return SeriesStyle{
		Label:           "Total Sales by Region",
		BackgroundColor: domain.Colors{colorRose, colorBlue, colorYellow},
	}
}

func ProductStyle() SeriesStyle {
	return SeriesStyle{
		Label:           "Units Sold by Product",
		BackgroundColor: domain.Colors{colorLightBlue},
	}
}

func TrendStyle() SeriesStyle {
	fill := false
	return SeriesStyle{
		Label:       "Total Sales Over Time",
		BorderColor: domain.Colors{colorRose},
		Fill:        &fill,
	}
}

func MarginStyle() SeriesStyle {
	return SeriesStyle{
		Label:                "Operating Margin (%)",
		BackgroundColor:      domain.Colors{colorYellowBg},
		BorderColor:          domain.Colors{colorYellow},
		PointBackgroundColor: domain.Colors{colorYellow},
	}
}

func ProfitStyle() SeriesStyle {
	return SeriesStyle{
		Label:                "Operating Profit ($)",
		BackgroundColor:      domain.Colors{colorBlueBg},
		BorderColor:          domain.Colors{colorBlue},
		PointBackgroundColor: domain.Colors{colorBlue},
	}
}

// AssembleView monta um gráfico de série única a partir de uma agregação
func AssembleView(view *AggregateView, style SeriesStyle) domain.ChartDataset {
	if view == nil {
		view = NewAggregateView()
	}

	return domain.ChartDataset{
		Labels:   view.Keys(),
		Datasets: []domain.Dataset{style.dataset(view.Values())},
	}
}

// AssemblePairs monta o gráfico de margem e lucro: dois datasets com os mesmos rótulos
func AssemblePairs(pairs PairSeries, margin, profit SeriesStyle) domain.ChartDataset {
	labels := make([]string, len(pairs.Labels))
	copy(labels, pairs.Labels)

	return domain.ChartDataset{
		Labels: labels,
		Datasets: []domain.Dataset{
			margin.dataset(pairs.Margins),
			profit.dataset(pairs.Profits),
		},
	}
}

func (s SeriesStyle) dataset(values []float64) domain.Dataset {
	data := make([]float64, len(values))
	copy(data, values)

	return domain.Dataset{
		Label:                s.Label,
		Data:                 data,
		BackgroundColor:      s.BackgroundColor,
		BorderColor:          s.BorderColor,
		PointBackgroundColor: s.PointBackgroundColor,
		Fill:                 s.Fill,
	}
}
