package log

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields são os campos estruturados anexados a uma entrada de log
type Fields logrus.Fields

// Logger é o logger usado pelos handlers e middlewares
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

// CorrelationIDKey guarda no contexto o ID de correlação da requisição
const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField = "correlation_id"
	timestampLayout    = "2006-01-02T15:04:05Z07:00"
)

type logger struct {
	*logrus.Entry
}

// L é o logger global, recriado por Setup
var L Logger = New(logrus.StandardLogger())

// Setup configura o logrus global com o nível informado.
// Um nível inválido cai para info.
func Setup(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampLayout,
		PadLevelText:    true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("Nível de log inválido, usando info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = New(logrus.StandardLogger())
}

// New cria um Logger sobre uma instância própria do logrus
func New(base *logrus.Logger) Logger {
	return &logger{Entry: logrus.NewEntry(base)}
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{Entry: l.Entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithContext anexa o contexto e, se houver, o ID de correlação
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	entry := l.Entry.WithContext(ctx)
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		entry = entry.WithField(correlationIDField, correlationID)
	}

	return &logger{Entry: entry}
}

// WithCorrelationID adiciona um ID de correlação ao contexto.
// Um ID recebido do cliente é reaproveitado; vazio gera um novo UUID.
func WithCorrelationID(ctx context.Context, incoming ...string) (context.Context, string) {
	correlationID := ""
	if len(incoming) > 0 {
		correlationID = incoming[0]
	}
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext devolve o logger global com os dados da requisição
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
