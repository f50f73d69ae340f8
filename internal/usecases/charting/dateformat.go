package charting

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"

	"github.com/vfg2006/sales-charts-api/internal/domain"
	"github.com/vfg2006/sales-charts-api/pkg/utils"
)

// InvalidDateKey agrupa as vendas cuja data não pôde ser interpretada
const InvalidDateKey = "Invalid Date"

const isoLayout = time.DateOnly

// DateFormatter reduz a data da fatura a um dia de calendário formatado conforme o locale.
// O mesmo instante pode gerar chaves diferentes com locale ou fuso diferentes.
type DateFormatter struct {
	locale   language.Tag
	layout   string
	location *time.Location
}

// NewDateFormatter recebe uma tag BCP 47 (vazia para ISO 8601) e um fuso IANA (vazio para UTC)
func NewDateFormatter(locale, timezone string) (*DateFormatter, error) {
	tag := language.Und
	if strings.TrimSpace(locale) != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale inválido %q: %w", locale, err)
		}
		tag = parsed
	}

	location := time.UTC
	if strings.TrimSpace(timezone) != "" {
		loaded, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("fuso horário inválido %q: %w", timezone, err)
		}
		location = loaded
	}

	return &DateFormatter{
		locale:   tag,
		layout:   layoutForLocale(tag),
		location: location,
	}, nil
}

// DefaultDateFormatter formata em ISO 8601 no fuso UTC
func DefaultDateFormatter() *DateFormatter {
	return &DateFormatter{locale: language.Und, layout: isoLayout, location: time.UTC}
}

func (f *DateFormatter) Layout() string {
	return f.layout
}

func (f *DateFormatter) Locale() string {
	return f.locale.String()
}

// Key retorna o rótulo do dia ou InvalidDateKey
func (f *DateFormatter) Key(date domain.InvoiceDate) string {
	instant, err := f.parse(date)
	if err != nil {
		return InvalidDateKey
	}
	return instant.In(f.location).Format(f.layout)
}

func (f *DateFormatter) parse(date domain.InvoiceDate) (time.Time, error) {
	if date.EpochMillis != nil {
		return utils.FromEpochMillis(*date.EpochMillis)
	}
	return utils.ParseDate(date.Text, f.location)
}

func layoutForLocale(tag language.Tag) string {
	if tag.IsRoot() {
		return isoLayout
	}

	base, _ := tag.Base()
	region, _ := tag.Region()

	switch base.String() {
	case "en":
		switch region.String() {
		case "US", "PH":
			return "1/2/2006"
		case "CA", "ZA":
			return isoLayout
		default:
			return "02/01/2006"
		}
	case "pt", "fr":
		return "02/01/2006"
	case "es", "it":
		return "2/1/2006"
	case "de":
		return "2.1.2006"
	case "ru", "tr":
		return "02.01.2006"
	case "pl":
		return "2.01.2006"
	case "nl":
		return "2-1-2006"
	case "ja", "zh":
		return "2006/1/2"
	case "ko":
		return "2006. 1. 2."
	default:
		return isoLayout
	}
}
