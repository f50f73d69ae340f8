package domain

import (
	"bytes"
	"math"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SaleRecord representa uma transação de venda como chega da origem de dados.
// Region e Product distinguem campo ausente de string vazia.
type SaleRecord struct {
	Region          GroupKey    `json:"region"`
	Product         GroupKey    `json:"product"`
	UnitsSold       Measure     `json:"unitsSold"`
	TotalSales      Measure     `json:"totalSales"`
	InvoiceDate     InvoiceDate `json:"invoiceDate"`
	OperatingMargin Measure     `json:"operatingMargin"`
	OperatingProfit Measure     `json:"operatingProfit"`
}

// Measure é um valor numérico tolerante: null, ausente ou não numérico vale zero.
type Measure float64

func (m Measure) Float64() float64 {
	return float64(m)
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	*m = Measure(parseMeasure(data))
	return nil
}

func parseMeasure(data []byte) float64 {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	text := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return 0
		}
		text = unquoted
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}

// InvoiceDate guarda a data da fatura sem interpretá-la: texto ou epoch em milissegundos.
// A conversão para dia de calendário acontece na agregação.
type InvoiceDate struct {
	Text        string
	EpochMillis *float64
}

func (d InvoiceDate) IsZero() bool {
	return d.Text == "" && d.EpochMillis == nil
}

func (d *InvoiceDate) UnmarshalJSON(data []byte) error {
	*d = InvoiceDate{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
		d.Text = text
		return nil
	}

	millis, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		// Valores que não são texto nem número (objetos, booleanos) viram data inválida
		d.Text = string(raw)
		return nil
	}
	d.EpochMillis = &millis

	return nil
}

func (d InvoiceDate) MarshalJSON() ([]byte, error) {
	switch {
	case d.EpochMillis != nil:
		return []byte(strconv.FormatFloat(*d.EpochMillis, 'f', -1, 64)), nil
	case d.Text == "":
		return []byte("null"), nil
	default:
		return json.Marshal(d.Text)
	}
}

// NewInvoiceDate cria uma data de fatura a partir de texto
func NewInvoiceDate(text string) InvoiceDate {
	return InvoiceDate{Text: text}
}

// SalesSnapshot é a lista de vendas obtida em uma busca. Não deve ser alterada após publicada.
type SalesSnapshot struct {
	ID        string       `json:"id"`
	Source    string       `json:"source"`
	FetchedAt time.Time    `json:"fetched_at"`
	Records   []SaleRecord `json:"-"`
}

// EmptySnapshot é o estado inicial, antes da primeira busca bem-sucedida
func EmptySnapshot() *SalesSnapshot {
	return &SalesSnapshot{Records: []SaleRecord{}}
}

func (s *SalesSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// Info retorna os metadados do snapshot sem os registros
func (s *SalesSnapshot) Info() SnapshotInfo {
	if s == nil {
		return SnapshotInfo{}
	}

	return SnapshotInfo{
		ID:        s.ID,
		Source:    s.Source,
		FetchedAt: s.FetchedAt,
		Records:   len(s.Records),
	}
}

type SnapshotInfo struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	Records   int       `json:"records"`
}

type SalesResponse struct {
	Snapshot SnapshotInfo `json:"snapshot"`
	Sales    []SaleRecord `json:"sales"`
}
