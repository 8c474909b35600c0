package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TVMaze  TVMaze  `json:"tvmaze" yaml:"tvmaze" mapstructure:"tvmaze"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Manager Manager `json:"manager" yaml:"manager" mapstructure:"manager"`
	Webhook Webhook `json:"webhook" yaml:"webhook" mapstructure:"webhook"`
}

type TVMaze struct {
	Scheme            string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"required,oneof=http https"`
	Host              string        `json:"host" yaml:"host" mapstructure:"host" validate:"required,hostname_port|hostname"`
	UserAgent         string        `json:"userAgent" yaml:"userAgent" mapstructure:"userAgent"`
	BaseBackoff       time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff" validate:"gte=0"`
	MaxRetries        int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond" mapstructure:"requestsPerSecond" validate:"gt=0"`
	Burst             int           `json:"burst" yaml:"burst" mapstructure:"burst" validate:"gte=1"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// Manager houses configuration related to catalog ingestion and refresh
type Manager struct {
	// CatalogStaleAfter is how old a show's last sync may be before it is refreshed
	CatalogStaleAfter time.Duration `json:"catalogStaleAfter" yaml:"catalogStaleAfter" mapstructure:"catalogStaleAfter" validate:"gt=0"`
	FetchTimeout      time.Duration `json:"fetchTimeout" yaml:"fetchTimeout" mapstructure:"fetchTimeout" validate:"gt=0"`
	RefreshWorkers    int           `json:"refreshWorkers" yaml:"refreshWorkers" mapstructure:"refreshWorkers" validate:"gte=1"`
	RefreshAttempts   uint          `json:"refreshAttempts" yaml:"refreshAttempts" mapstructure:"refreshAttempts" validate:"gte=1"`
	Jobs              Jobs          `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
}

type Jobs struct {
	// CatalogRefresh is the refresh loop interval. Zero disables the loop.
	CatalogRefresh time.Duration `json:"catalogRefresh" yaml:"catalogRefresh" mapstructure:"catalogRefresh" validate:"gte=0"`
}

type Webhook struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// Defaulter is satisfied by *viper.Viper
type Defaulter interface {
	SetDefault(key string, value any)
}

// SetDefaults registers the default value of every setting
func SetDefaults(d Defaulter) {
	d.SetDefault("tvmaze.scheme", "https")
	d.SetDefault("tvmaze.host", "api.tvmaze.com")
	d.SetDefault("tvmaze.userAgent", "showtrack")
	d.SetDefault("tvmaze.backoff", time.Second)
	d.SetDefault("tvmaze.maxRetries", 3)
	d.SetDefault("tvmaze.requestsPerSecond", 2.0)
	d.SetDefault("tvmaze.burst", 5)

	d.SetDefault("server.port", 8080)

	d.SetDefault("storage.filePath", "showtrack.sqlite")

	d.SetDefault("manager.catalogStaleAfter", 24*time.Hour)
	d.SetDefault("manager.fetchTimeout", 10*time.Second)
	d.SetDefault("manager.refreshWorkers", 4)
	d.SetDefault("manager.refreshAttempts", 3)
	d.SetDefault("manager.jobs.catalogRefresh", time.Hour)

	d.SetDefault("webhook.enabled", false)
}

// New reads a new configuration and validates it
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks every setting against its constraints
func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
