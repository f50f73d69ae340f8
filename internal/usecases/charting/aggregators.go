package charting

import "github.com/vfg2006/sales-charts-api/internal/domain"

// SalesByRegion soma totalSales por região
func SalesByRegion(records []domain.SaleRecord) *AggregateView {
	return groupBy(records,
		func(r domain.SaleRecord) string { return normalizeKey(r.Region) },
		func(r domain.SaleRecord) float64 { return r.TotalSales.Float64() },
	)
}

// UnitsByProduct soma unitsSold por produto
func UnitsByProduct(records []domain.SaleRecord) *AggregateView {
	return groupBy(records,
		func(r domain.SaleRecord) string { return normalizeKey(r.Product) },
		func(r domain.SaleRecord) float64 { return r.UnitsSold.Float64() },
	)
}

// SalesOverTime soma totalSales por dia formatado. A ordem é a de primeira ocorrência,
// não a cronológica: a série só sai ordenada se a entrada já estiver ordenada por data.
func SalesOverTime(records []domain.SaleRecord, dates *DateFormatter) *AggregateView {
	if dates == nil {
		dates = DefaultDateFormatter()
	}

	return groupBy(records,
		func(r domain.SaleRecord) string { return dates.Key(r.InvoiceDate) },
		func(r domain.SaleRecord) float64 { return r.TotalSales.Float64() },
	)
}

// PairSeries são três sequências paralelas, uma posição por registro
type PairSeries struct {
	Labels  []string
	Margins []float64
	Profits []float64
}

func (p PairSeries) Len() int {
	return len(p.Labels)
}

// MarginProfitPairs extrai margem e lucro de cada registro, sem agrupar.
// Produtos repetidos aparecem repetidos nos rótulos.
func MarginProfitPairs(records []domain.SaleRecord) PairSeries {
	pairs := PairSeries{
		Labels:  make([]string, 0, len(records)),
		Margins: make([]float64, 0, len(records)),
		Profits: make([]float64, 0, len(records)),
	}

	for _, record := range records {
		pairs.Labels = append(pairs.Labels, normalizeKey(record.Product))
		pairs.Margins = append(pairs.Margins, record.OperatingMargin.Float64())
		pairs.Profits = append(pairs.Profits, record.OperatingProfit.Float64())
	}

	return pairs
}
