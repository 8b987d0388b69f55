package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Report   ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Timezone string // zona usada para "movimientos de hoy" y los meses de los reportes
}

// Location devuelve la zona horaria configurada; si no se puede cargar usa UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión del dashboard.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// UpstreamConfig API REST de inventario (dueña de productos, categorías y movimientos).
type UpstreamConfig struct {
	BaseURL  string
	Timeout  time.Duration
	MaxPages int // tope de páginas al recorrer listados paginados
}

// RedisConfig caché opcional de lecturas. Addr vacío = caché deshabilitada.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled indica si se configuró Redis.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// ReportConfig datos impresos en el reporte PDF.
type ReportConfig struct {
	BusinessName string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, UPSTREAM_BASE_URL, etc.
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "lojinha-control-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Timezone: getString(v, "APP_TIMEZONE", "America/Sao_Paulo"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "lojinha-control"),
		},
		Upstream: upstreamConfig(v),
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
			TTL:      time.Duration(getInt(v, "CACHE_TTL_SECONDS", 30)) * time.Second,
		},
		Report: ReportConfig{
			BusinessName: getString(v, "REPORT_BUSINESS_NAME", "Lojinha"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadUpstream lee solo la configuración de la API de inventario (herramientas de línea de comandos).
func LoadUpstream() (UpstreamConfig, error) {
	up := upstreamConfig(newViper())
	if up.BaseURL == "" {
		return up, fmt.Errorf("config: UPSTREAM_BASE_URL es obligatorio")
	}
	return up, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// Opcional: archivo .env o config.env; se ignora si no existe
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func upstreamConfig(v *viper.Viper) UpstreamConfig {
	up := UpstreamConfig{
		BaseURL:  strings.TrimRight(getString(v, "UPSTREAM_BASE_URL", "http://localhost:8000/api"), "/"),
		Timeout:  time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
		MaxPages: getInt(v, "UPSTREAM_MAX_PAGES", 20),
	}
	if up.MaxPages <= 0 {
		up.MaxPages = 1
	}
	return up
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("config: UPSTREAM_BASE_URL es obligatorio")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
