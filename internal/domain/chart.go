package domain

import (
	"bytes"
	"math"
)

type ChartKind string

const (
	ChartKindDoughnut ChartKind = "doughnut"
	ChartKindBar      ChartKind = "bar"
	ChartKindLine     ChartKind = "line"
	ChartKindRadar    ChartKind = "radar"
)

// ChartDataset é a estrutura {labels, datasets} consumida pelo Chart.js
type ChartDataset struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label                string    `json:"label"`
	Data                 []float64 `json:"data"`
	BackgroundColor      Colors    `json:"backgroundColor,omitempty"`
	BorderColor          Colors    `json:"borderColor,omitempty"`
	PointBackgroundColor Colors    `json:"pointBackgroundColor,omitempty"`
	Fill                 *bool     `json:"fill,omitempty"`
}

// MarshalJSON escreve somas que estouraram (±Inf, NaN) como null, mantendo
// data com o mesmo tamanho de labels
func (d Dataset) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label                string     `json:"label"`
		Data                 []*float64 `json:"data"`
		BackgroundColor      Colors     `json:"backgroundColor,omitempty"`
		BorderColor          Colors     `json:"borderColor,omitempty"`
		PointBackgroundColor Colors     `json:"pointBackgroundColor,omitempty"`
		Fill                 *bool      `json:"fill,omitempty"`
	}{
		Label:                d.Label,
		Data:                 finiteOrNull(d.Data),
		BackgroundColor:      d.BackgroundColor,
		BorderColor:          d.BorderColor,
		PointBackgroundColor: d.PointBackgroundColor,
		Fill:                 d.Fill,
	})
}

func finiteOrNull(values []float64) []*float64 {
	if values == nil {
		return nil
	}

	out := make([]*float64, len(values))
	for i := range values {
		if math.IsInf(values[i], 0) || math.IsNaN(values[i]) {
			continue
		}
		out[i] = &values[i]
	}
	return out
}

// Colors é serializado como string quando há uma única cor e como lista caso contrário,
// que é o formato aceito pelo Chart.js
type Colors []string

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

func (c *Colors) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*c = nil
		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return err
		}
		*c = Colors{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return err
	}
	*c = Colors(many)
	return nil
}

// Chart é um gráfico do painel com o tipo e o título exibidos na página
type Chart struct {
	Name  string       `json:"name"`
	Kind  ChartKind    `json:"kind"`
	Title string       `json:"title"`
	Data  ChartDataset `json:"data"`
}

type Dashboard struct {
	Snapshot SnapshotInfo `json:"snapshot"`
	Charts   []Chart      `json:"charts"`
}
