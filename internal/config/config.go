package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverPostgres  = "postgres"
	DriverMySQL     = "mysql"
	DriverSQLServer = "sqlserver"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	FlashReportSync FlashReportSync `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	RateLimitRequests      int `mapstructure:"rate_limit_requests"` // Zero desliga o limite
	RateLimitWindowMinutes int `mapstructure:"rate_limit_window_minutes"`
}

func (s Server) RateLimitWindow() time.Duration {
	return time.Duration(s.RateLimitWindowMinutes) * time.Minute
}

type Database struct {
	DSN                 string `mapstructure:"database_dsn"` // Quando informado, ignora driver/url/user/password na montagem
	Driver              string `mapstructure:"database_driver"`
	Password            string `mapstructure:"database_password"`
	URL                 string `mapstructure:"database_url"` // host:porta/banco
	User                string `mapstructure:"database_user"`
	InvoicesTable       string `mapstructure:"database_invoices_table"`
	UsersTable          string `mapstructure:"database_users_table"`
	QueryTimeoutSeconds int    `mapstructure:"database_query_timeout_seconds"`
}

// QueryTimeout devolve o limite de cada consulta, zero se desabilitado
func (d Database) QueryTimeout() time.Duration {
	if d.QueryTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(d.QueryTimeoutSeconds) * time.Second
}

type Auth struct {
	TokenTTLHours int `mapstructure:"auth_token_ttl_hours"`
}

type Report struct {
	AnalyticsLevel  string `mapstructure:"report_analytics_level"`
	ConsoleRowLimit int    `mapstructure:"report_console_row_limit"`
	OutputDir       string `mapstructure:"report_output_dir"`
	Output          string `mapstructure:"report_output"`
	FilePath        string `mapstructure:"report_file_path"`
}

type FlashReportSync struct {
	CronSchedule string `mapstructure:"flash_report_sync_cron"`
	LookbackDays int    `mapstructure:"flash_report_sync_lookback_days"`
	Format       string `mapstructure:"flash_report_sync_format"`
	Enabled      bool   `mapstructure:"flash_report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100) // Por IP a cada janela
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)

	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/cashier?sslmode=disable") // host:porta/banco; parâmetros após ? valem só para postgres
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_INVOICES_TABLE", "tblInvoices")
	viper.SetDefault("DATABASE_USERS_TABLE", "tblUsers")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT_SECONDS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("REPORT_ANALYTICS_LEVEL", "full")
	viper.SetDefault("REPORT_CONSOLE_ROW_LIMIT", 50) // Linhas exibidas no terminal
	viper.SetDefault("REPORT_OUTPUT_DIR", "reports")
	viper.SetDefault("REPORT_OUTPUT", "console")
	viper.SetDefault("REPORT_FILE_PATH", "")

	viper.SetDefault("FLASH_REPORT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("FLASH_REPORT_SYNC_LOOKBACK_DAYS", 1)  // Dia anterior
	viper.SetDefault("FLASH_REPORT_SYNC_FORMAT", "csv")
	viper.SetDefault("FLASH_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

// BindFlags liga as flags da linha de comando às chaves de configuração.
// Flags informadas têm precedência sobre variáveis de ambiente e defaults.
func BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"DATABASE_DSN":           "db-connection",
		"DATABASE_DRIVER":        "db-driver",
		"REPORT_OUTPUT":          "output",
		"REPORT_ANALYTICS_LEVEL": "analytics-level",
		"REPORT_FILE_PATH":       "file-path",
		"LOG_LEVEL":              "log-level",
	}

	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("erro ao vincular a flag %s: %w", name, err)
		}
	}

	return nil
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.Driver = strings.ToLower(strings.TrimSpace(config.Database.Driver))
	if config.Database.DSN == "" {
		config.Database.DSN, err = BuildDSN(config.Database)
		if err != nil {
			return nil, err
		}
	}

	config.Database.DSN, err = NormalizeDSN(config.Database.Driver, config.Database.DSN)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// NormalizeDSN ajusta uma string de conexão informada pelo usuário ao que o
// repositório espera. No MySQL força parseTime para DATETIME chegar como time.Time.
func NormalizeDSN(driver, dsn string) (string, error) {
	if driver != DriverMySQL || dsn == "" {
		return dsn, nil
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("string de conexão mysql inválida: %w", err)
	}
	cfg.ParseTime = true

	return cfg.FormatDSN(), nil
}

// BuildDSN monta a string de conexão no formato esperado por cada driver
func BuildDSN(db Database) (string, error) {
	host, name, _ := strings.Cut(db.URL, "/")

	switch db.Driver {
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s", db.User, db.Password, db.URL), nil
	case DriverMySQL:
		cfg := mysql.NewConfig()
		cfg.User = db.User
		cfg.Passwd = db.Password
		cfg.Net = "tcp"
		cfg.Addr = host
		cfg.DBName = name
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	case DriverSQLServer:
		u := &url.URL{
			Scheme: "sqlserver",
			User:   url.UserPassword(db.User, db.Password),
			Host:   host,
		}
		query := url.Values{}
		if name != "" {
			query.Set("database", name)
		}
		u.RawQuery = query.Encode()
		return u.String(), nil
	default:
		return "", fmt.Errorf("driver de banco não suportado: %q", db.Driver)
	}
}

// Carrega o .env procurando no diretório atual e nos acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
