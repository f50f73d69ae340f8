package charting

import "github.com/vfg2006/sales-charts-api/internal/domain"

// MissingKey é a chave usada quando o campo de agrupamento não veio no registro
const MissingKey = "undefined"

// AggregateView é um mapa ordenado de chave para soma acumulada.
// As chaves ficam na ordem da primeira ocorrência na entrada.
type AggregateView struct {
	keys   []string
	values []float64
	index  map[string]int
}

func NewAggregateView() *AggregateView {
	return &AggregateView{
		keys:   []string{},
		values: []float64{},
		index:  make(map[string]int),
	}
}

// Add soma amount ao total de key, criando a chave com zero na primeira vez
func (v *AggregateView) Add(key string, amount float64) {
	pos, ok := v.index[key]
	if !ok {
		pos = len(v.keys)
		v.index[key] = pos
		v.keys = append(v.keys, key)
		v.values = append(v.values, 0)
	}
	v.values[pos] += amount
}

func (v *AggregateView) Get(key string) (float64, bool) {
	pos, ok := v.index[key]
	if !ok {
		return 0, false
	}
	return v.values[pos], true
}

func (v *AggregateView) Len() int {
	return len(v.keys)
}

func (v *AggregateView) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

func (v *AggregateView) Values() []float64 {
	values := make([]float64, len(v.values))
	copy(values, v.values)
	return values
}

func (v *AggregateView) Total() float64 {
	var total float64
	for _, value := range v.values {
		total += value
	}
	return total
}

// normalizeKey aplica a mesma regra de chave ausente a todos os agrupamentos.
// Não há ajuste de caixa nem de espaços: chaves são comparadas pelo valor exato.
func normalizeKey(key domain.GroupKey) string {
	if !key.Valid {
		return MissingKey
	}
	return key.Value
}

func groupBy(
	records []domain.SaleRecord,
	key func(domain.SaleRecord) string,
	measure func(domain.SaleRecord) float64,
) *AggregateView {
	view := NewAggregateView()
	for _, record := range records {
		view.Add(key(record), measure(record))
	}
	return view
}
