package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-charts-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-charts-api/infrastructure/repository"
	"github.com/vfg2006/sales-charts-api/internal/config"
	"github.com/vfg2006/sales-charts-api/internal/domain"
	"github.com/vfg2006/sales-charts-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Vendas usadas quando nenhum arquivo é informado
const sampleSales = `[
	{"region":"East","product":"A","unitsSold":10,"totalSales":100,"invoiceDate":"2024-01-01","operatingMargin":20,"operatingProfit":20},
	{"region":"East","product":"B","unitsSold":5,"totalSales":50,"invoiceDate":"2024-01-01","operatingMargin":10,"operatingProfit":5},
	{"region":"West","product":"A","unitsSold":7,"totalSales":70,"invoiceDate":"2024-01-02","operatingMargin":15,"operatingProfit":10.5}
]`

func main() {
	file := flag.String("file", "", "arquivo JSON com a lista de vendas")
	flag.Parse()

	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	records, err := readSales(*file)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler vendas")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	ddl, err := repository.CreateSalesTableSQL(cfg.Database.SalesTable)
	if err != nil {
		logrus.Fatal(err)
	}

	insertSQL, insertArgs, err := repository.InsertSalesQuery(cfg.Database.SalesTable, records)
	if err != nil {
		logrus.Fatal(err)
	}

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return errors.Wrap(err, "erro ao criar tabela de vendas")
		}
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return errors.Wrap(err, "erro ao inserir vendas")
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Carga de vendas falhou")
	}

	logrus.WithFields(logrus.Fields{
		"table":    cfg.Database.SalesTable,
		"records":  len(records),
		"duration": time.Since(startTime).String(),
	}).Info("Vendas inseridas com sucesso")
}

func readSales(file string) ([]domain.SaleRecord, error) {
	payload := []byte(sampleSales)
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		payload = content
	}

	var records []domain.SaleRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, err
	}

	return records, nil
}
