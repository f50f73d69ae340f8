package utils

import (
	"errors"
	"math"
	"strings"
	"time"
)

// maxEpochMillis é o maior deslocamento aceito a partir de 1970 (±100 milhões de dias)
const maxEpochMillis = 8.64e15

var ErrInvalidDate = errors.New("invalid date")

// Formatos aceitos, do mais específico para o mais genérico
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	time.DateTime,
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"1/2/2006 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate interpreta uma data textual. Valores sem fuso são lidos no fuso informado.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// FromEpochMillis converte milissegundos desde 1970 em um instante
func FromEpochMillis(millis float64) (time.Time, error) {
	if math.IsNaN(millis) || math.IsInf(millis, 0) || math.Abs(millis) > maxEpochMillis {
		return time.Time{}, ErrInvalidDate
	}

	return time.UnixMilli(int64(millis)).UTC(), nil
}
