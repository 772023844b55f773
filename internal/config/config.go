package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Origens de dados suportadas
const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Dataset              Dataset              `mapstructure:",squash"`
	BrandRankingSnapshot BrandRankingSnapshot `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Dataset struct {
	Source    string `mapstructure:"dataset_source"`
	Path      string `mapstructure:"dataset_path"`
	Delimiter string `mapstructure:"dataset_delimiter"`
	Sheet     string `mapstructure:"dataset_sheet"`
	Table     string `mapstructure:"dataset_table"`
}

type BrandRankingSnapshot struct {
	CronSchedule string `mapstructure:"brand_ranking_snapshot_cron"`
	SyncEnabled  bool   `mapstructure:"brand_ranking_snapshot_enabled"`
	Limit        int    `mapstructure:"brand_ranking_snapshot_limit"`
}

// DelimiterRune retorna o separador de colunas configurado
func (d Dataset) DelimiterRune() rune {
	if d.Delimiter == "" {
		return ','
	}
	if d.Delimiter == `\t` || strings.EqualFold(d.Delimiter, "tab") {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}

// validateDelimiter aceita vazio, "tab", "\t" ou exatamente um caractere UTF-8 válido
func (d Dataset) validateDelimiter() error {
	if d.Delimiter == "" || d.Delimiter == `\t` || strings.EqualFold(d.Delimiter, "tab") {
		return nil
	}
	r, size := utf8.DecodeRuneInString(d.Delimiter)
	if r == utf8.RuneError || size != len(d.Delimiter) {
		return fmt.Errorf("DATASET_DELIMITER inválido: %q (esperado um único caractere)", d.Delimiter)
	}
	if r == '\r' || r == '\n' || r == '"' {
		return fmt.Errorf("DATASET_DELIMITER inválido: %q", d.Delimiter)
	}
	return nil
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8050)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8050")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/car_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceFile)
	viper.SetDefault("DATASET_PATH", "Car Sales.xlsx - car_data.csv")
	viper.SetDefault("DATASET_DELIMITER", ",")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("DATASET_TABLE", "car_sales")

	viper.SetDefault("BRAND_RANKING_SNAPSHOT_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("BRAND_RANKING_SNAPSHOT_ENABLED", false)    // Requer DATABASE_ENABLED
	viper.SetDefault("BRAND_RANKING_SNAPSHOT_LIMIT", 10)         // Marcas por ano

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH é obrigatório quando DATASET_SOURCE=%s", DatasetSourceFile)
		}
	case DatasetSourcePostgres:
		if !c.Database.Enabled {
			return fmt.Errorf("DATASET_SOURCE=%s requer DATABASE_ENABLED=true", DatasetSourcePostgres)
		}
	default:
		return fmt.Errorf("DATASET_SOURCE inválido: %q", c.Dataset.Source)
	}

	if err := c.Dataset.validateDelimiter(); err != nil {
		return err
	}

	if c.BrandRankingSnapshot.SyncEnabled && !c.Database.Enabled {
		return fmt.Errorf("BRAND_RANKING_SNAPSHOT_ENABLED requer DATABASE_ENABLED=true")
	}

	return nil
}

// loadEnvFile carrega o arquivo .env do diretório atual ou de diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
