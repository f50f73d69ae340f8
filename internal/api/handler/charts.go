package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-charts-api/internal/api/handler/router"
	"github.com/vfg2006/sales-charts-api/internal/usecases/charting"
	"github.com/vfg2006/sales-charts-api/pkg/apiErrors"
	"github.com/vfg2006/sales-charts-api/pkg/log"
)

// GetDashboard retorna os quatro gráficos do painel
func GetDashboard(service charting.ChartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar o painel")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o painel", nil)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

// GetChart retorna os dados de um único gráfico
func GetChart(service charting.ChartService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := router.Param(r, "name")

		chart, err := service.Chart(name)
		if err != nil {
			if errors.Is(err, charting.ErrUnknownChart) {
				apiErrors.WriteError(w, apiErrors.ErrChartNotFound, "Gráfico não encontrado", map[string]any{
					"name":      name,
					"available": charting.ChartNames,
				})
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("chart", name).Error("Erro ao montar o gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o gráfico", nil)
			return
		}

		writeJSON(w, http.StatusOK, chart)
	}
}
