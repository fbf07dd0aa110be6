package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	SigeCloud     SigeCloud     `mapstructure:",squash"`
	OrdersSync    OrdersSync    `mapstructure:",squash"`
	ProductsSync  ProductsSync  `mapstructure:",squash"`
	BoletosSync   BoletosSync   `mapstructure:",squash"`
	CustomersSync CustomersSync `mapstructure:",squash"`
	Mailbox       Mailbox       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// SigeCloud guarda as credenciais e os limites da API de origem. O timeout
// vale para todas as entidades.
type SigeCloud struct {
	BaseURL        string `mapstructure:"sigecloud_base_url"`
	Token          string `mapstructure:"sigecloud_token"`
	User           string `mapstructure:"sigecloud_user"`
	App            string `mapstructure:"sigecloud_app"`
	PageSize       int    `mapstructure:"sigecloud_page_size"`
	TimeoutSeconds int    `mapstructure:"sigecloud_timeout_seconds"`
	RetryMax       int    `mapstructure:"sigecloud_retry_max"`
}

type OrdersSync struct {
	CronSchedule string `mapstructure:"orders_sync_cron"`
	Enabled      bool   `mapstructure:"orders_sync_enabled"`
	SinceDays    int    `mapstructure:"orders_sync_since_days"`
}

type ProductsSync struct {
	CronSchedule string `mapstructure:"products_sync_cron"`
	Enabled      bool   `mapstructure:"products_sync_enabled"`
	WriteMode    string `mapstructure:"products_sync_write_mode"`
}

type BoletosSync struct {
	CronSchedule string `mapstructure:"boletos_sync_cron"`
	Enabled      bool   `mapstructure:"boletos_sync_enabled"`
	SinceDays    int    `mapstructure:"boletos_sync_since_days"`
}

type CustomersSync struct {
	CronSchedule string `mapstructure:"customers_sync_cron"`
	Enabled      bool   `mapstructure:"customers_sync_enabled"`
	SinceDays    int    `mapstructure:"customers_sync_since_days"`
}

type Mailbox struct {
	IMAPHost     string `mapstructure:"mailbox_imap_host"`
	IMAPPort     int    `mapstructure:"mailbox_imap_port"`
	SMTPHost     string `mapstructure:"mailbox_smtp_host"`
	SMTPPort     int    `mapstructure:"mailbox_smtp_port"`
	User         string `mapstructure:"mailbox_user"`
	Password     string `mapstructure:"mailbox_password"`
	TrashFolder  string `mapstructure:"mailbox_trash_folder"`
	CronSchedule string `mapstructure:"mailbox_poll_cron"`
	Enabled      bool   `mapstructure:"mailbox_poll_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sugarart")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SIGECLOUD_BASE_URL", "https://api.sigecloud.com.br")
	viper.SetDefault("SIGECLOUD_TOKEN", "your_token")
	viper.SetDefault("SIGECLOUD_USER", "your_user")
	viper.SetDefault("SIGECLOUD_APP", "API")
	viper.SetDefault("SIGECLOUD_PAGE_SIZE", 1000)
	viper.SetDefault("SIGECLOUD_TIMEOUT_SECONDS", 30) // Timeout único para todas as entidades
	viper.SetDefault("SIGECLOUD_RETRY_MAX", 3)

	viper.SetDefault("ORDERS_SYNC_CRON", "0 */2 * * *") // A cada duas horas
	viper.SetDefault("ORDERS_SYNC_ENABLED", false)
	viper.SetDefault("ORDERS_SYNC_SINCE_DAYS", 0) // 0 = somente o dia atual

	viper.SetDefault("PRODUCTS_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("PRODUCTS_SYNC_ENABLED", false)
	viper.SetDefault("PRODUCTS_SYNC_WRITE_MODE", "upsert")

	viper.SetDefault("BOLETOS_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("BOLETOS_SYNC_ENABLED", false)
	viper.SetDefault("BOLETOS_SYNC_SINCE_DAYS", 30)

	viper.SetDefault("CUSTOMERS_SYNC_CRON", "30 * * * *") // A cada hora
	viper.SetDefault("CUSTOMERS_SYNC_ENABLED", false)
	viper.SetDefault("CUSTOMERS_SYNC_SINCE_DAYS", 0)

	viper.SetDefault("MAILBOX_IMAP_HOST", "localhost")
	viper.SetDefault("MAILBOX_IMAP_PORT", 993)
	viper.SetDefault("MAILBOX_SMTP_HOST", "localhost")
	viper.SetDefault("MAILBOX_SMTP_PORT", 587)
	viper.SetDefault("MAILBOX_USER", "")
	viper.SetDefault("MAILBOX_PASSWORD", "")
	viper.SetDefault("MAILBOX_TRASH_FOLDER", "Trash")
	viper.SetDefault("MAILBOX_POLL_CRON", "*/10 * * * *") // A cada dez minutos
	viper.SetDefault("MAILBOX_POLL_ENABLED", false)
}

// NewConfig monta a configuração uma única vez na subida do processo.
// Nenhum componente lê variáveis de ambiente depois disso.
func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile procura o .env nas localizações usuais para execução local
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
