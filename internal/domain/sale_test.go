package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{name: "Número inteiro", payload: `10`, expected: 10},
		{name: "Número decimal", payload: `10.5`, expected: 10.5},
		{name: "Negativo", payload: `-2`, expected: -2},
		{name: "Texto numérico", payload: `"42.25"`, expected: 42.25},
		{name: "Texto não numérico", payload: `"abc"`, expected: 0},
		{name: "Nulo", payload: `null`, expected: 0},
		{name: "Booleano", payload: `true`, expected: 0},
		{name: "Objeto", payload: `{"value":1}`, expected: 0},
		{name: "Texto NaN", payload: `"NaN"`, expected: 0},
		{name: "Texto infinito", payload: `"Infinity"`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record struct {
				Value Measure `json:"value"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"value":`+tt.payload+`}`), &record))
			assert.Equal(t, tt.expected, record.Value.Float64())
		})
	}
}

func TestInvoiceDate_UnmarshalJSON(t *testing.T) {
	millis := float64(1704067200000)

	tests := []struct {
		name     string
		payload  string
		expected InvoiceDate
	}{
		{name: "Texto", payload: `"2024-01-01"`, expected: InvoiceDate{Text: "2024-01-01"}},
		{name: "Epoch em milissegundos", payload: `1704067200000`, expected: InvoiceDate{EpochMillis: &millis}},
		{name: "Nulo", payload: `null`, expected: InvoiceDate{}},
		{name: "Booleano vira texto inválido", payload: `false`, expected: InvoiceDate{Text: "false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record struct {
				Date InvoiceDate `json:"date"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"date":`+tt.payload+`}`), &record))
			assert.Equal(t, tt.expected, record.Date)
		})
	}
}

func TestSaleRecord_MissingFields(t *testing.T) {
	var records []SaleRecord
	payload := `[{"region":null,"unitsSold":"x"},{"region":"","product":"A","totalSales":5}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 2)

	assert.False(t, records[0].Region.Valid)
	assert.False(t, records[0].Product.Valid)
	assert.Equal(t, 0.0, records[0].UnitsSold.Float64())
	assert.True(t, records[0].InvoiceDate.IsZero())

	assert.Equal(t, NewGroupKey(""), records[1].Region)
	assert.Equal(t, 5.0, records[1].TotalSales.Float64())
}

func TestInvoiceDate_MarshalJSON(t *testing.T) {
	millis := float64(1704067200000)

	for _, tt := range []struct {
		date     InvoiceDate
		expected string
	}{
		{date: NewInvoiceDate("2024-01-01"), expected: `"2024-01-01"`},
		{date: InvoiceDate{EpochMillis: &millis}, expected: `1704067200000`},
		{date: InvoiceDate{}, expected: `null`},
	} {
		body, err := json.Marshal(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(body))
	}
}

func TestSalesSnapshot_Info(t *testing.T) {
	var nilSnapshot *SalesSnapshot
	assert.Equal(t, 0, nilSnapshot.Len())
	assert.Equal(t, SnapshotInfo{}, nilSnapshot.Info())

	snapshot := &SalesSnapshot{ID: "abc", Source: "http", Records: []SaleRecord{{Region: NewGroupKey("East")}}}
	info := snapshot.Info()
	assert.Equal(t, "abc", info.ID)
	assert.Equal(t, "http", info.Source)
	assert.Equal(t, 1, info.Records)

	empty := EmptySnapshot()
	assert.NotNil(t, empty.Records)
	assert.Equal(t, 0, empty.Len())
}

func TestGroupKey_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected GroupKey
	}{
		{name: "Texto", payload: `"East"`, expected: NewGroupKey("East")},
		{name: "Texto vazio", payload: `""`, expected: NewGroupKey("")},
		{name: "Nulo", payload: `null`, expected: GroupKey{}},
		{name: "Inteiro", payload: `5`, expected: NewGroupKey("5")},
		{name: "Decimal", payload: `1.50`, expected: NewGroupKey("1.5")},
		{name: "Negativo", payload: `-3`, expected: NewGroupKey("-3")},
		{name: "Zero negativo", payload: `-0`, expected: NewGroupKey("0")},
		{name: "Número grande", payload: `1e21`, expected: NewGroupKey("1e+21")},
		{name: "Número pequeno", payload: `0.0000001`, expected: NewGroupKey("1e-7")},
		{name: "Booleano verdadeiro", payload: `true`, expected: NewGroupKey("true")},
		{name: "Booleano falso", payload: `false`, expected: NewGroupKey("false")},
		{name: "Objeto", payload: `{"name":"West"}`, expected: NewGroupKey("[object Object]")},
		{name: "Lista", payload: `[1,"a",null,true]`, expected: NewGroupKey("1,a,,true")},
		{name: "Lista vazia", payload: `[]`, expected: NewGroupKey("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record struct {
				Key GroupKey `json:"key"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"key":`+tt.payload+`}`), &record))
			assert.Equal(t, tt.expected, record.Key)
		})
	}
}

func TestSaleRecord_WrongTypedFieldsKeepBatch(t *testing.T) {
	var records []SaleRecord
	payload := `[
		{"region":"East","product":"A","totalSales":100},
		{"region":5,"product":{"id":1},"totalSales":true,"invoiceDate":{"day":1}},
		{"region":"West","product":"B","totalSales":70}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 3)

	assert.Equal(t, NewGroupKey("5"), records[1].Region)
	assert.Equal(t, NewGroupKey("[object Object]"), records[1].Product)
	assert.Equal(t, 0.0, records[1].TotalSales.Float64())
	assert.Equal(t, NewGroupKey("West"), records[2].Region)

	body, err := json.Marshal(SaleRecord{Region: NewGroupKey("East")})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"region":"East","product":null`)
}
