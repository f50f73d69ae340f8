package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-charts-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa o corpo antes de enviar o status; se a serialização falhar
// a resposta vira um 500 padronizado em vez de um corpo truncado
func writeJSON(w http.ResponseWriter, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao serializar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(append(payload, '\n')); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
