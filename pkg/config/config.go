package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SHOPNORM"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "SHOPNORM_APP_ENV"
	EnvDBDSN  = "SHOPNORM_DB_DSN"
	EnvDBHost = "SHOPNORM_DB_HOST"
	EnvDBUser = "SHOPNORM_DB_USER"
	EnvDBName = "SHOPNORM_DB_NAME"
)

// DateFormat is the layout used for every date column in the generated tables.
const DateFormat = "2006-01-02"

type Config struct {
	App      AppConfig
	Generate GenerateConfig
	DB       DBConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints after env processing and flag overrides.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if _, _, err := c.Generate.StockDateRange(); err != nil {
		return err
	}
	return nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPNORM_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"SHOPNORM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPNORM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// GenerateConfig holds the knobs for the normalization pipeline. The two
// fractions and the seed are the only tunables that change what gets
// generated; everything else is a path.
type GenerateConfig struct {
	InputDir  string `envconfig:"SHOPNORM_INPUT_DIR" default:"data/source"`
	OutputDir string `envconfig:"SHOPNORM_OUTPUT_DIR" default:"data/normalized"`

	Seed            int64   `envconfig:"SHOPNORM_SEED" default:"42"`
	AddressFraction float64 `envconfig:"SHOPNORM_ADDRESS_FRACTION" default:"0.7" validate:"gte=0,lte=1"`
	StockFraction   float64 `envconfig:"SHOPNORM_STOCK_FRACTION" default:"0.3" validate:"gte=0,lte=1"`

	StockDateStart string `envconfig:"SHOPNORM_STOCK_DATE_START" default:"2021-01-01"`
	StockDateEnd   string `envconfig:"SHOPNORM_STOCK_DATE_END" default:"2025-12-01"`
}

// StockDateRange parses the configured movement-date window.
func (g GenerateConfig) StockDateRange() (time.Time, time.Time, error) {
	start, err := time.Parse(DateFormat, g.StockDateStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid stock date start %q: %w", g.StockDateStart, err)
	}
	end, err := time.Parse(DateFormat, g.StockDateEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid stock date end %q: %w", g.StockDateEnd, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("stock date end %s precedes start %s", g.StockDateEnd, g.StockDateStart)
	}
	return start, end, nil
}

type DBConfig struct {
	DSN string `envconfig:"SHOPNORM_DB_DSN"`

	LegacyHost     string `envconfig:"SHOPNORM_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPNORM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPNORM_DB_USER"`
	LegacyPassword string `envconfig:"SHOPNORM_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPNORM_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPNORM_DB_SSLMODE" default:"disable"`
}

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

// EnsureDSN assembles a DSN from the legacy host/user/name pieces when no
// explicit DSN is set. Only the load and migrate commands need a database.
func (db *DBConfig) EnsureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
