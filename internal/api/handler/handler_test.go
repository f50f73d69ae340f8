package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-charts-api/internal/api/handler/mocks"
	"github.com/vfg2006/sales-charts-api/internal/api/handler/router"
	"github.com/vfg2006/sales-charts-api/internal/domain"
	"github.com/vfg2006/sales-charts-api/internal/scheduler"
	"github.com/vfg2006/sales-charts-api/internal/usecases/charting"
	chartingmocks "github.com/vfg2006/sales-charts-api/internal/usecases/charting/mocks"
	loadingmocks "github.com/vfg2006/sales-charts-api/internal/usecases/loading/mocks"
	"github.com/vfg2006/sales-charts-api/pkg/apiErrors"
)

func serve(rt *router.Router, method, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, httptest.NewRequest(method, path, nil))
	return recorder
}

func regionChart() domain.ChartDataset {
	return domain.ChartDataset{
		Labels: []string{"East", "West"},
		Datasets: []domain.Dataset{{
			Label:           "Total Sales by Region",
			Data:            []float64{150, 70},
			BackgroundColor: domain.Colors{"#FF6384", "#36A2EB", "#FFCE56"},
		}},
	}
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	recorder := serve(rt, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ok"`)
}

func TestGetSales(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *domain.SalesSnapshot
		expected string
	}{
		{
			name:     "Snapshot com vendas",
			snapshot: &domain.SalesSnapshot{ID: "abc", Source: "http", Records: []domain.SaleRecord{{Region: domain.NewGroupKey("East"), UnitsSold: 2, TotalSales: 20, InvoiceDate: domain.NewInvoiceDate("2024-01-01")}}},
			expected: `{
				"snapshot": {"id":"abc","source":"http","fetched_at":"0001-01-01T00:00:00Z","records":1},
				"sales": [{"region":"East","product":null,"unitsSold":2,"totalSales":20,"invoiceDate":"2024-01-01","operatingMargin":0,"operatingProfit":0}]
			}`,
		},
		{
			name:     "Snapshot vazio",
			snapshot: domain.EmptySnapshot(),
			expected: `{"snapshot": {"id":"","source":"","fetched_at":"0001-01-01T00:00:00Z","records":0}, "sales": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := loadingmocks.NewMockSnapshotLoader(ctrl)
			loader.EXPECT().Current().Return(tt.snapshot)

			rt := router.New(router.WithRoutes(Sales(loader)...))
			recorder := serve(rt, http.MethodGet, "/v1/sales")

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.JSONEq(t, tt.expected, recorder.Body.String())
		})
	}
}

func TestGetChart(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(service *chartingmocks.MockChartService)
		validate func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Gráfico existente",
			path: "/v1/charts/region",
			setup: func(service *chartingmocks.MockChartService) {
				service.EXPECT().Chart("region").Return(regionChart(), nil)
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.JSONEq(t, `{
					"labels": ["East","West"],
					"datasets": [{"label":"Total Sales by Region","data":[150,70],"backgroundColor":["#FF6384","#36A2EB","#FFCE56"]}]
				}`, recorder.Body.String())
			},
		},
		{
			name: "Gráfico inexistente",
			path: "/v1/charts/pie",
			setup: func(service *chartingmocks.MockChartService) {
				service.EXPECT().Chart("pie").Return(domain.ChartDataset{}, fmt.Errorf("%w: pie", charting.ErrUnknownChart))
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, recorder.Code)
				assert.Contains(t, recorder.Body.String(), apiErrors.ErrChartNotFound)
				assert.Contains(t, recorder.Body.String(), "margin-profit")
			},
		},
		{
			name: "Erro inesperado",
			path: "/v1/charts/trend",
			setup: func(service *chartingmocks.MockChartService) {
				service.EXPECT().Chart("trend").Return(domain.ChartDataset{}, errors.New("boom"))
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Contains(t, recorder.Body.String(), apiErrors.ErrInternalServer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := chartingmocks.NewMockChartService(ctrl)
			tt.setup(service)

			rt := router.New(router.WithRoutes(Charts(service)...))
			tt.validate(t, serve(rt, http.MethodGet, tt.path))
		})
	}
}

func TestGetDashboard(t *testing.T) {
	t.Run("Painel completo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := chartingmocks.NewMockChartService(ctrl)
		service.EXPECT().Dashboard(gomock.Any()).Return(&domain.Dashboard{
			Snapshot: domain.SnapshotInfo{ID: "abc", Records: 3},
			Charts: []domain.Chart{
				{Name: charting.ChartRegion, Kind: domain.ChartKindDoughnut, Title: "Total Sales by Region", Data: regionChart()},
			},
		}, nil)

		rt := router.New(router.WithRoutes(Charts(service)...))
		recorder := serve(rt, http.MethodGet, "/v1/charts")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"kind":"doughnut"`)
		assert.Contains(t, recorder.Body.String(), `"id":"abc"`)
	})

	t.Run("Erro ao montar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := chartingmocks.NewMockChartService(ctrl)
		service.EXPECT().Dashboard(gomock.Any()).Return(nil, context.Canceled)

		rt := router.New(router.WithRoutes(Charts(service)...))
		recorder := serve(rt, http.MethodGet, "/v1/charts")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(refresher *mocks.MockSalesRefresher)
		statusCode int
		contains   string
	}{
		{
			name: "Dispara atualização",
			path: "/v1/cron/sales-refresh/run",
			setup: func(refresher *mocks.MockSalesRefresher) {
				refresher.EXPECT().TriggerManualSync().Return(nil)
			},
			statusCode: http.StatusAccepted,
			contains:   "sales-refresh",
		},
		{
			name: "Atualização já em andamento",
			path: "/v1/cron/sales-refresh/run",
			setup: func(refresher *mocks.MockSalesRefresher) {
				refresher.EXPECT().TriggerManualSync().Return(scheduler.ErrRefreshInProgress)
			},
			statusCode: http.StatusConflict,
			contains:   apiErrors.ErrSyncInProgress,
		},
		{
			name:       "Tipo desconhecido",
			path:       "/v1/cron/meta/run",
			setup:      func(refresher *mocks.MockSalesRefresher) {},
			statusCode: http.StatusNotFound,
			contains:   apiErrors.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockSalesRefresher(ctrl)
			tt.setup(refresher)

			rt := router.New(router.WithRoutes(CronJobs(refresher)...))
			recorder := serve(rt, http.MethodPost, tt.path)

			assert.Equal(t, tt.statusCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.contains)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockSalesRefresher(ctrl)
	refresher.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": true})

	rt := router.New(router.WithRoutes(CronJobs(refresher)...))
	recorder := serve(rt, http.MethodGet, "/v1/cron/status")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"sales-refresh":{"sync_enabled":true}}`, recorder.Body.String())
}

func TestWriteJSON(t *testing.T) {
	t.Run("Corpo serializável", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		writeJSON(recorder, http.StatusAccepted, map[string]any{"type": "sales-refresh"})

		assert.Equal(t, http.StatusAccepted, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"type":"sales-refresh"}`, recorder.Body.String())
	})

	t.Run("Falha de serialização vira erro padronizado", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		writeJSON(recorder, http.StatusOK, map[string]any{"total": math.Inf(1)})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"code":"SRV_001","message":"Erro ao serializar resposta"}`, recorder.Body.String())
	})
}

func TestGetChart_OverflowedSumStaysValidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := chartingmocks.NewMockChartService(ctrl)
	service.EXPECT().Chart("region").Return(domain.ChartDataset{
		Labels:   []string{"East", "West"},
		Datasets: []domain.Dataset{{Label: "Total Sales by Region", Data: []float64{math.Inf(1), 70}}},
	}, nil)

	rt := router.New(router.WithRoutes(Charts(service)...))
	recorder := serve(rt, http.MethodGet, "/v1/charts/region")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"labels":["East","West"],"datasets":[{"label":"Total Sales by Region","data":[null,70]}]}`, recorder.Body.String())
}
