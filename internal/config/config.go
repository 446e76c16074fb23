// config предоставляет структуру конфигурации nova-backend
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env"    env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	DB       DBConfig      `yaml:"db"`
	S3       S3Config      `yaml:"s3"`
	Media    MediaConfig   `yaml:"media"`
	Auth     AuthConfig    `yaml:"auth"`
	Limits   LimitsConfig  `yaml:"limits"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// S3Config — объектное хранилище медиа (MinIO/S3).
type S3Config struct {
	Endpoint      string        `yaml:"endpoint"        env:"S3_ENDPOINT"`
	AccessKey     string        `yaml:"access_key"      env:"S3_ACCESS_KEY"`
	SecretKey     string        `yaml:"secret_key"      env:"S3_SECRET_KEY"`
	Bucket        string        `yaml:"bucket"          env:"S3_BUCKET" env-default:"nova-media"`
	UseSSL        bool          `yaml:"use_ssl"         env:"S3_USE_SSL" env-default:"false"`
	PresignTTL    time.Duration `yaml:"presign_ttl"     env:"S3_PRESIGN_TTL" env-default:"15m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// MediaConfig — ограничения на загружаемые файлы.
type MediaConfig struct {
	MaxSizeBytes int64 `yaml:"max_size_bytes" env:"MEDIA_MAX_SIZE_BYTES" env-default:"52428800"`
	// Допустимые типы: аудио эпизода и обложка.
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"MEDIA_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"audio/mpeg,audio/wav,image/jpeg,image/png,image/webp"`
}

// AuthConfig — проверка bearer-токенов identity-провайдера.
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer    string   `yaml:"issuer"     env:"JWT_ISSUER" env-default:"nova"`
	Audience  []string `yaml:"audience"   env:"JWT_AUDIENCE" env-separator:"," env-default:"nova-backend"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// SearchLimit — жёсткий потолок результатов поиска/листинга контента.
	SearchLimit int64 `yaml:"search" env:"SEARCH_LIMIT" env-default:"50"`
	// TrendingLimit — фиксированный размер трендовой выборки.
	TrendingLimit int64 `yaml:"trending" env:"TRENDING_LIMIT" env-default:"20"`
	// DefaultPageSize применяется при запросе страницы с page_size=0.
	DefaultPageSize int32 `yaml:"default_page_size" env:"DEFAULT_PAGE_SIZE" env-default:"10"`
	// MaxPageSize — верхняя граница размера страницы.
	MaxPageSize int32 `yaml:"max_page_size" env:"MAX_PAGE_SIZE" env-default:"100"`
	// AuthorLimit — потолок выдачи по автору.
	AuthorLimit int64 `yaml:"author" env:"AUTHOR_LIMIT" env-default:"100"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Limits.SearchLimit <= 0 {
		return fmt.Errorf("limits.search must be > 0")
	}
	if c.Limits.TrendingLimit <= 0 {
		return fmt.Errorf("limits.trending must be > 0")
	}
	if c.Limits.DefaultPageSize <= 0 {
		return fmt.Errorf("limits.default_page_size must be > 0")
	}
	if c.Limits.MaxPageSize <= 0 {
		return fmt.Errorf("limits.max_page_size must be > 0")
	}
	if c.Limits.DefaultPageSize > c.Limits.MaxPageSize {
		return fmt.Errorf("limits.default_page_size must be <= limits.max_page_size")
	}
	if c.Media.MaxSizeBytes <= 0 {
		return fmt.Errorf("media.max_size_bytes must be > 0")
	}
	return nil
}
