package repository

//go:generate mockgen -source=sale.go -destination=mocks/mock_sale.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-charts-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-charts-api/internal/domain"
	"github.com/vfg2006/sales-charts-api/pkg/utils"
)

const defaultSalesTable = "sales"

// Nome de tabela aceito: identificador simples, opcionalmente qualificado pelo schema
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

var saleColumns = []string{
	"region",
	"product",
	"units_sold",
	"total_sales",
	"invoice_date::text",
	"operating_margin",
	"operating_profit",
}

type SaleRepository interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

type saleRepository struct {
	conn  postgres.Queryer
	table string
}

func NewSaleRepository(conn postgres.Queryer, table string) (SaleRepository, error) {
	if table == "" {
		table = defaultSalesTable
	}

	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("nome de tabela inválido: %q", table)
	}

	return &saleRepository{
		conn:  conn,
		table: table,
	}, nil
}

func (r *saleRepository) listSalesQuery() (string, []interface{}, error) {
	return squirrel.
		Select(saleColumns...).
		From(r.table).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *saleRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	salesSQL, salesArgs, err := r.listSalesQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a consulta de vendas")
	}

	rows, err := r.conn.QueryContext(ctx, salesSQL, salesArgs...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar a tabela %s", r.table)
	}
	defer rows.Close()

	sales := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var row saleRow
		if err := rows.Scan(
			&row.Region,
			&row.Product,
			&row.UnitsSold,
			&row.TotalSales,
			&row.InvoiceDate,
			&row.OperatingMargin,
			&row.OperatingProfit,
		); err != nil {
			logrus.WithError(err).Warn("Linha de venda ignorada")
			continue
		}

		sales = append(sales, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao ler as vendas")
	}

	return sales, nil
}

// saleRow recebe as colunas aceitando NULL em todas elas
type saleRow struct {
	Region          sql.NullString
	Product         sql.NullString
	UnitsSold       sql.NullFloat64
	TotalSales      sql.NullFloat64
	InvoiceDate     sql.NullString
	OperatingMargin sql.NullFloat64
	OperatingProfit sql.NullFloat64
}

func (r saleRow) toDomain() domain.SaleRecord {
	record := domain.SaleRecord{
		UnitsSold:       nullMeasure(r.UnitsSold),
		TotalSales:      nullMeasure(r.TotalSales),
		OperatingMargin: nullMeasure(r.OperatingMargin),
		OperatingProfit: nullMeasure(r.OperatingProfit),
	}

	if r.Region.Valid {
		record.Region = domain.NewGroupKey(r.Region.String)
	}

	if r.Product.Valid {
		record.Product = domain.NewGroupKey(r.Product.String)
	}

	if r.InvoiceDate.Valid {
		record.InvoiceDate = domain.NewInvoiceDate(r.InvoiceDate.String)
	}

	return record
}

func nullMeasure(value sql.NullFloat64) domain.Measure {
	if !value.Valid {
		return 0
	}
	return domain.Measure(value.Float64)
}

// CreateSalesTableSQL retorna o DDL da tabela de vendas lida por ListSales
func CreateSalesTableSQL(table string) (string, error) {
	if !tableNamePattern.MatchString(table) {
		return "", fmt.Errorf("nome de tabela inválido: %q", table)
	}

	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	region TEXT,
	product TEXT,
	units_sold NUMERIC,
	total_sales NUMERIC,
	invoice_date TIMESTAMPTZ,
	operating_margin NUMERIC,
	operating_profit NUMERIC
)`, table), nil
}

// InsertSalesQuery monta um único INSERT com todas as vendas, preservando a ordem
func InsertSalesQuery(table string, records []domain.SaleRecord) (string, []interface{}, error) {
	if !tableNamePattern.MatchString(table) {
		return "", nil, fmt.Errorf("nome de tabela inválido: %q", table)
	}

	if len(records) == 0 {
		return "", nil, errors.New("nenhuma venda para inserir")
	}

	builder := squirrel.
		Insert(table).
		Columns("region", "product", "units_sold", "total_sales", "invoice_date", "operating_margin", "operating_profit").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			nullableKey(record.Region),
			nullableKey(record.Product),
			record.UnitsSold.Float64(),
			record.TotalSales.Float64(),
			invoiceDateValue(record.InvoiceDate),
			record.OperatingMargin.Float64(),
			record.OperatingProfit.Float64(),
		)
	}

	return builder.ToSql()
}

func nullableKey(key domain.GroupKey) interface{} {
	if !key.Valid {
		return nil
	}
	return key.Value
}

// invoiceDateValue converte a data para o que o Postgres aceita em TIMESTAMPTZ.
// Epoch vira instante UTC; texto vai como veio; epoch fora da faixa vira NULL.
func invoiceDateValue(date domain.InvoiceDate) interface{} {
	switch {
	case date.EpochMillis != nil:
		instant, err := utils.FromEpochMillis(*date.EpochMillis)
		if err != nil {
			return nil
		}
		return instant
	case date.Text != "":
		return date.Text
	default:
		return nil
	}
}
