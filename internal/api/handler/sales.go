package handler

import (
	"net/http"

	"github.com/vfg2006/sales-charts-api/internal/domain"
	"github.com/vfg2006/sales-charts-api/internal/usecases/loading"
	"github.com/vfg2006/sales-charts-api/pkg/log"
)

// GetSales retorna os registros do snapshot atual
func GetSales(loader loading.SnapshotLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := loader.Current()

		log.ForContext(r.Context()).WithFields(log.Fields{
			"snapshot_id": snapshot.ID,
			"records":     snapshot.Len(),
		}).Debug("Listando vendas")

		records := snapshot.Records
		if records == nil {
			records = []domain.SaleRecord{}
		}

		writeJSON(w, http.StatusOK, domain.SalesResponse{
			Snapshot: snapshot.Info(),
			Sales:    records,
		})
	}
}
