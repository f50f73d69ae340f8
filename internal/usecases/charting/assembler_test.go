package charting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-charts-api/internal/domain"
)

func assertAligned(t *testing.T, chart domain.ChartDataset) {
	t.Helper()
	for _, dataset := range chart.Datasets {
		assert.Len(t, dataset.Data, len(chart.Labels), dataset.Label)
	}
}

func TestAssembleView(t *testing.T) {
	view := NewAggregateView()
	view.Add("East", 100)
	view.Add("West", 70)
	view.Add("East", 50)

	chart := AssembleView(view, RegionStyle())

	assert.Equal(t, []string{"East", "West"}, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, "Total Sales by Region", chart.Datasets[0].Label)
	assert.Equal(t, []float64{150, 70}, chart.Datasets[0].Data)
	assert.Equal(t, domain.Colors{"#FF6384", "#36A2EB", "#FFCE56"}, chart.Datasets[0].BackgroundColor)
	assertAligned(t, chart)

	// O gráfico não compartilha memória com a agregação
	chart.Labels[0] = "changed"
	assert.Equal(t, []string{"East", "West"}, view.Keys())
}

func TestAssembleView_Empty(t *testing.T) {
	for _, view := range []*AggregateView{nil, NewAggregateView()} {
		chart := AssembleView(view, ProductStyle())

		require.Len(t, chart.Datasets, 1)
		assert.NotNil(t, chart.Labels)
		assert.NotNil(t, chart.Datasets[0].Data)
		assertAligned(t, chart)

		body, err := json.Marshal(chart)
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":[],"datasets":[{"label":"Units Sold by Product","data":[],"backgroundColor":"#42A5F5"}]}`, string(body))
	}
}

func TestAssemblePairs(t *testing.T) {
	chart := AssemblePairs(MarginProfitPairs(scenarioRecords()), MarginStyle(), ProfitStyle())

	assert.Equal(t, []string{"A", "B", "A"}, chart.Labels)
	require.Len(t, chart.Datasets, 2)
	assert.Equal(t, "Operating Margin (%)", chart.Datasets[0].Label)
	assert.Equal(t, []float64{20, 10, 15}, chart.Datasets[0].Data)
	assert.Equal(t, "Operating Profit ($)", chart.Datasets[1].Label)
	assert.Equal(t, []float64{20, 5, 10.5}, chart.Datasets[1].Data)
	assertAligned(t, chart)
}

func TestAssemble_JSONShape(t *testing.T) {
	trend := AssembleView(SalesOverTime(scenarioRecords(), nil), TrendStyle())
	body, err := json.Marshal(trend)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"labels": ["2024-01-01", "2024-01-02"],
		"datasets": [{"label": "Total Sales Over Time", "data": [150, 70], "borderColor": "#FF6384", "fill": false}]
	}`, string(body))

	pairs := AssemblePairs(MarginProfitPairs(scenarioRecords()[:1]), MarginStyle(), ProfitStyle())
	body, err = json.Marshal(pairs)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"labels": ["A"],
		"datasets": [
			{"label": "Operating Margin (%)", "data": [20], "backgroundColor": "rgba(255, 206, 86, 0.6)", "borderColor": "#FFCE56", "pointBackgroundColor": "#FFCE56"},
			{"label": "Operating Profit ($)", "data": [20], "backgroundColor": "rgba(54, 162, 235, 0.6)", "borderColor": "#36A2EB", "pointBackgroundColor": "#36A2EB"}
		]
	}`, string(body))
}

func TestStyles_AreIndependentCopies(t *testing.T) {
	style := RegionStyle()
	style.BackgroundColor[0] = "#000000"

	assert.Equal(t, "#FF6384", RegionStyle().BackgroundColor[0])
}
