package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// objectKey é como um objeto aparece quando convertido em texto no navegador
const objectKey = "[object Object]"

// GroupKey é um campo de agrupamento (região, produto) tolerante ao tipo recebido.
// Texto fica como veio; null ou ausente fica sem valor; números, booleanos,
// listas e objetos viram texto como o dashboard os mostraria.
type GroupKey struct {
	Value string
	Valid bool
}

func NewGroupKey(value string) GroupKey {
	return GroupKey{Value: value, Valid: true}
}

func (k *GroupKey) UnmarshalJSON(data []byte) error {
	*k = parseGroupKey(data)
	return nil
}

func (k GroupKey) MarshalJSON() ([]byte, error) {
	if !k.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(k.Value)
}

func parseGroupKey(data []byte) GroupKey {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return GroupKey{}
	}

	switch raw[0] {
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return GroupKey{}
		}
		return NewGroupKey(text)
	case '{':
		return NewGroupKey(objectKey)
	case '[':
		return NewGroupKey(joinArrayKey(raw))
	case 't', 'f':
		return NewGroupKey(string(raw))
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return NewGroupKey(string(raw))
	}
	return NewGroupKey(formatNumberKey(value))
}

// joinArrayKey junta os elementos com vírgula; null vira vazio
func joinArrayKey(raw []byte) string {
	var items []jsoniter.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}

	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = parseGroupKey(item).Value
	}
	return strings.Join(parts, ",")
}

// formatNumberKey escreve o número sem zeros supérfluos: 5 vira "5", 1e21 vira "1e+21"
func formatNumberKey(value float64) string {
	if value == 0 {
		return "0"
	}

	abs := math.Abs(value)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + exponent[:1] + digits
}
