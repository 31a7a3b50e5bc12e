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
	StorageFile     = "file"
	StoragePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Google      Google      `mapstructure:",squash"`
	Meta        Meta        `mapstructure:",squash"`
	Session     Session     `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Storage     Storage     `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Render      Render      `mapstructure:",squash"`
	Upstream    Upstream    `mapstructure:",squash"`
	Maintenance Maintenance `mapstructure:",squash"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	LandingURL string `mapstructure:"app_landing_url"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Google struct {
	ClientID        string `mapstructure:"google_oauth_client_id"`
	ClientSecret    string `mapstructure:"google_oauth_client_secret"`
	RedirectURL     string `mapstructure:"google_oauth_redirect_uri"`
	DeveloperToken  string `mapstructure:"google_developer_key"`
	LoginCustomerID string `mapstructure:"google_ads_customer_id"`
	AdsBaseURL      string `mapstructure:"google_ads_url"`
	AdsVersion      string `mapstructure:"google_ads_version"`
	UserInfoURL     string `mapstructure:"google_userinfo_url"`
	AdsURL          string `mapstructure:"-"`
}

type Meta struct {
	BaseURL             string    `mapstructure:"meta_base_url"`
	Version             string    `mapstructure:"meta_version"`
	AccessToken         string    `mapstructure:"meta_read_key"`
	AppID               string    `mapstructure:"meta_app_id"`
	AppSecret           string    `mapstructure:"meta_app_secret"`
	TokenRefreshEnabled bool      `mapstructure:"meta_token_refresh_enabled"`
	TokenRefreshCron    string    `mapstructure:"meta_token_refresh_cron"`
	URL                 string    `mapstructure:"-"`
	TokenExpiresAt      time.Time `mapstructure:"-"`
}

type Session struct {
	Secret       string        `mapstructure:"session_secret"`
	Store        string        `mapstructure:"session_store"`
	TTL          time.Duration `mapstructure:"session_ttl"`
	CookieName   string        `mapstructure:"session_cookie_name"`
	CookieSecure bool          `mapstructure:"session_cookie_secure"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Storage struct {
	Driver           string `mapstructure:"storage_driver"`
	ClinicFile       string `mapstructure:"clinic_file"`
	RefreshTokenFile string `mapstructure:"refresh_token_file"`
}

type Database struct {
	DSN            string `mapstructure:"-"`
	Driver         string `mapstructure:"database_driver"`
	Password       string `mapstructure:"database_password"`
	URL            string `mapstructure:"database_url"`
	User           string `mapstructure:"database_user"`
	MigrateOnStart bool   `mapstructure:"database_migrate"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Upstream struct {
	Timeout           time.Duration `mapstructure:"upstream_timeout"`
	RequestsPerSecond float64       `mapstructure:"upstream_rate_per_second"`
	Burst             int           `mapstructure:"upstream_burst"`
}

type Maintenance struct {
	SessionCleanupCron string `mapstructure:"session_cleanup_cron"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_LANDING_URL", "/")

	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", 4000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_OAUTH_REDIRECT_URI", "http://localhost:4000/api/endAuth")
	viper.SetDefault("GOOGLE_DEVELOPER_KEY", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v22")
	viper.SetDefault("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v3/userinfo")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v24.0")
	viper.SetDefault("META_READ_KEY", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_TOKEN_REFRESH_ENABLED", false)
	viper.SetDefault("META_TOKEN_REFRESH_CRON", "0 3 * * *") // Todos os dias às 3h da manhã

	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("SESSION_STORE", SessionStoreMemory)
	viper.SetDefault("SESSION_TTL", "155520000ms") // ~18 dias
	viper.SetDefault("SESSION_COOKIE_NAME", "metryka.sid")
	viper.SetDefault("SESSION_COOKIE_SECURE", true)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("STORAGE_DRIVER", StorageFile)
	viper.SetDefault("CLINIC_FILE", "data/clinicList.json")
	viper.SetDefault("REFRESH_TOKEN_FILE", "data/refreshTokens.jsonl")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metryka?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("UPSTREAM_RATE_PER_SECOND", 5)
	viper.SetDefault("UPSTREAM_BURST", 5)

	viper.SetDefault("SESSION_CLEANUP_CRON", "*/15 * * * *")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.finish()

	if missing := config.MissingCredentials(); len(missing) > 0 {
		logrus.WithField("keys", strings.Join(missing, ",")).
			Warn("Credenciais não configuradas. As chamadas que dependem delas vão falhar")
	}

	return config, nil
}

// finish preenche os campos derivados
func (c *Config) finish() {
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)
	c.Google.AdsURL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Google.AdsBaseURL, "/"), c.Google.AdsVersion)

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// MissingCredentials lista as chaves obrigatórias vazias. Não impede a
// inicialização.
func (c *Config) MissingCredentials() []string {
	required := []struct {
		key   string
		value string
	}{
		{"GOOGLE_OAUTH_CLIENT_ID", c.Google.ClientID},
		{"GOOGLE_OAUTH_CLIENT_SECRET", c.Google.ClientSecret},
		{"GOOGLE_DEVELOPER_KEY", c.Google.DeveloperToken},
		{"SESSION_SECRET", c.Session.Secret},
		{"META_READ_KEY", c.Meta.AccessToken},
	}

	missing := make([]string, 0)
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas o ambiente")
}
