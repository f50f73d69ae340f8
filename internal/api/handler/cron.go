package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-charts-api/internal/api/handler/router"
	"github.com/vfg2006/sales-charts-api/internal/scheduler"
	"github.com/vfg2006/sales-charts-api/pkg/apiErrors"
	"github.com/vfg2006/sales-charts-api/pkg/log"
)

// CronJobTypeSalesRefresh recarrega o snapshot de vendas
const CronJobTypeSalesRefresh = "sales-refresh"

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(refresher SalesRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := router.Param(r, "type")
		logger := log.ForContext(r.Context()).WithField("type", cronType)

		if cronType != CronJobTypeSalesRefresh {
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeSalesRefresh, nil)
			return
		}

		if err := refresher.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrRefreshInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Atualização de vendas já em andamento", nil)
				return
			}

			logger.WithError(err).Error("Erro ao iniciar cron job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		logger.Info("Cron job iniciada manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(refresher SalesRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			CronJobTypeSalesRefresh: refresher.GetStatus(),
		})
	}
}
