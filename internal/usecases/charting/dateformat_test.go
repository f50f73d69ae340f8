package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-charts-api/internal/domain"
)

func TestNewDateFormatter(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		timezone string
		layout   string
		wantErr  bool
	}{
		{name: "Sem locale usa ISO", locale: "", timezone: "", layout: "2006-01-02"},
		{name: "en-US", locale: "en-US", layout: "1/2/2006"},
		{name: "en sem região assume US", locale: "en", layout: "1/2/2006"},
		{name: "en-GB", locale: "en-GB", layout: "02/01/2006"},
		{name: "pt-BR", locale: "pt-BR", timezone: "America/Sao_Paulo", layout: "02/01/2006"},
		{name: "de-DE", locale: "de-DE", timezone: "Europe/Berlin", layout: "2.1.2006"},
		{name: "ja-JP", locale: "ja-JP", layout: "2006/1/2"},
		{name: "Locale sem formato conhecido usa ISO", locale: "sv-SE", layout: "2006-01-02"},
		{name: "Locale inválido", locale: "not a locale!", wantErr: true},
		{name: "Fuso inválido", locale: "en-US", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, err := NewDateFormatter(tt.locale, tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.layout, formatter.Layout())
		})
	}
}

func TestDateFormatter_Key(t *testing.T) {
	usFormatter, err := NewDateFormatter("en-US", "UTC")
	require.NoError(t, err)

	tests := []struct {
		name      string
		formatter *DateFormatter
		date      domain.InvoiceDate
		expected  string
	}{
		{name: "Data ISO", formatter: DefaultDateFormatter(), date: domain.NewInvoiceDate("2024-01-01"), expected: "2024-01-01"},
		{name: "Data com horário descarta a hora", formatter: DefaultDateFormatter(), date: domain.NewInvoiceDate("2024-02-29T18:45:00Z"), expected: "2024-02-29"},
		{name: "Data com offset é convertida para o fuso", formatter: DefaultDateFormatter(), date: domain.NewInvoiceDate("2024-01-01T22:00:00-05:00"), expected: "2024-01-02"},
		{name: "Epoch em milissegundos", formatter: DefaultDateFormatter(), date: domain.InvoiceDate{EpochMillis: floatPtr(0)}, expected: "1970-01-01"},
		{name: "Formato americano", formatter: usFormatter, date: domain.NewInvoiceDate("2024-01-05"), expected: "1/5/2024"},
		{name: "Texto inválido", formatter: DefaultDateFormatter(), date: domain.NewInvoiceDate("not-a-date"), expected: InvalidDateKey},
		{name: "Data ausente", formatter: DefaultDateFormatter(), date: domain.InvoiceDate{}, expected: InvalidDateKey},
		{name: "Epoch fora do intervalo", formatter: DefaultDateFormatter(), date: domain.InvoiceDate{EpochMillis: floatPtr(9e15)}, expected: InvalidDateKey},
		{name: "Mês inexistente", formatter: DefaultDateFormatter(), date: domain.NewInvoiceDate("2024-13-01"), expected: InvalidDateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.formatter.Key(tt.date))
		})
	}
}
