package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	SalesAPI     SalesAPI     `mapstructure:",squash"`
	SalesRefresh SalesRefresh `mapstructure:",squash"`
	Chart        Chart        `mapstructure:",squash"`
	HTTP         HTTP         `mapstructure:",squash"`
	SalesSource  string       `mapstructure:"sales_source"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Driver     string `mapstructure:"database_driver"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SalesTable string `mapstructure:"sales_table"`
}

type SalesAPI struct {
	URL         string        `mapstructure:"sales_api_url"`
	AccessToken string        `mapstructure:"sales_api_token"`
	Timeout     time.Duration `mapstructure:"sales_api_timeout"`
}

type SalesRefresh struct {
	CronSchedule string `mapstructure:"sales_refresh_cron"`
	Enabled      bool   `mapstructure:"sales_refresh_enabled"`
}

// Chart define como as datas das vendas viram rótulos do gráfico temporal
type Chart struct {
	Locale   string `mapstructure:"chart_locale"`
	Timezone string `mapstructure:"chart_timezone"`
}

type HTTP struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
}

func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("LOG_LEVEL", "debug")

	v.SetDefault("SALES_SOURCE", SourceHTTP)

	v.SetDefault("SALES_API_URL", "http://localhost:8081/api/sales")
	v.SetDefault("SALES_API_TOKEN", "")
	v.SetDefault("SALES_API_TIMEOUT", "30s")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("SALES_TABLE", "sales")

	v.SetDefault("SALES_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	v.SetDefault("SALES_REFRESH_ENABLED", false)

	v.SetDefault("CHART_LOCALE", "")   // Vazio formata as datas em ISO 8601
	v.SetDefault("CHART_TIMEZONE", "") // Vazio usa UTC

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(viper.GetViper())
}

// Load decodifica a configuração a partir de uma instância do viper já preparada
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() error {
	c.SalesSource = strings.ToLower(strings.TrimSpace(c.SalesSource))
	switch c.SalesSource {
	case SourceHTTP, SourcePostgres:
	default:
		return fmt.Errorf("SALES_SOURCE inválido: %q (use %s ou %s)", c.SalesSource, SourceHTTP, SourcePostgres)
	}

	origins := make([]string, 0, len(c.HTTP.AllowedOrigins))
	for _, origin := range c.HTTP.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.HTTP.AllowedOrigins = origins

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
