package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // deadline timezones must resolve on minimal images

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config holds all service configuration
type Config struct {
	App        AppConfig
	Log        LogConfig
	Storage    StorageConfig
	AWS        AWSConfig
	DynamoDB   DynamoDBConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Payments   PaymentsConfig
	Settlement SettlementConfig
	Swagger    SwaggerConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// StorageConfig picks the persistence adapter: dynamodb, postgres or sqlite.
type StorageConfig struct {
	Driver string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// DynamoDBConfig holds the endpoint override and table names.
type DynamoDBConfig struct {
	Endpoint          string
	RequestsTable     string
	ObligationsTable  string
	TransactionsTable string
	GuardsTable       string
	CatalogTable      string
	CredentialsTable  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
}

// RedisConfig holds the connection used for the distributed obligation lock.
type RedisConfig struct {
	Enabled       bool
	Host          string
	Port          int
	Password      string
	DB            int
	LockTTL       time.Duration
	LockRetryWait time.Duration
	LockRetries   int
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
}

// SettlementConfig holds the business policy knobs.
type SettlementConfig struct {
	DeadlineTimezone string
	NetTermDays      int
	MaxCASRetries    int
}

type SwaggerConfig struct {
	Enabled bool
}

// Load reads configuration from an optional config.toml and the environment.
// Environment variables win; a key such as dynamodb.endpoint is read from
// DYNAMODB_ENDPOINT.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		},
		AWS: AWSConfig{
			Region:          v.GetString("aws.region"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
		},
		DynamoDB: DynamoDBConfig{
			Endpoint:          v.GetString("dynamodb.endpoint"),
			RequestsTable:     v.GetString("dynamodb.requests_table"),
			ObligationsTable:  v.GetString("dynamodb.obligations_table"),
			TransactionsTable: v.GetString("dynamodb.transactions_table"),
			GuardsTable:       v.GetString("dynamodb.guards_table"),
			CatalogTable:      v.GetString("dynamodb.catalog_table"),
			CredentialsTable:  v.GetString("dynamodb.credentials_table"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			SQLitePath:      v.GetString("database.sqlite_path"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Enabled:       v.GetBool("redis.enabled"),
			Host:          v.GetString("redis.host"),
			Port:          v.GetInt("redis.port"),
			Password:      v.GetString("redis.password"),
			DB:            v.GetInt("redis.db"),
			LockTTL:       v.GetDuration("redis.lock_ttl"),
			LockRetryWait: v.GetDuration("redis.lock_retry_wait"),
			LockRetries:   v.GetInt("redis.lock_retries"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("jwt.secret"),
			Issuer: v.GetString("jwt.issuer"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: v.GetString("mercadopago.access_token"),
			Mock:                   isTruthy(v.GetString("payment_gateway.mock")) || isTruthy(v.GetString("mercadopago.mock")),
		},
		Settlement: SettlementConfig{
			DeadlineTimezone: v.GetString("settlement.deadline_timezone"),
			NetTermDays:      v.GetInt("settlement.net_term_days"),
			MaxCASRetries:    v.GetInt("settlement.max_cas_retries"),
		},
		Swagger: SwaggerConfig{
			Enabled: v.GetString("swagger.enabled") == "" || v.GetBool("swagger.enabled"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "trade-credit-settlement"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDynamoDB
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.AWS.AccessKeyID == "" {
		cfg.AWS.AccessKeyID = "local"
	}
	if cfg.AWS.SecretAccessKey == "" {
		cfg.AWS.SecretAccessKey = "local"
	}
	if cfg.DynamoDB.RequestsTable == "" {
		cfg.DynamoDB.RequestsTable = "obligation_requests"
	}
	if cfg.DynamoDB.ObligationsTable == "" {
		cfg.DynamoDB.ObligationsTable = "payment_obligations"
	}
	if cfg.DynamoDB.TransactionsTable == "" {
		cfg.DynamoDB.TransactionsTable = "payment_transactions"
	}
	if cfg.DynamoDB.GuardsTable == "" {
		cfg.DynamoDB.GuardsTable = "settlement_guards"
	}
	if cfg.DynamoDB.CatalogTable == "" {
		cfg.DynamoDB.CatalogTable = "catalog_items"
	}
	if cfg.DynamoDB.CredentialsTable == "" {
		cfg.DynamoDB.CredentialsTable = "user_credentials"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "settlement"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "settlement.db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Redis.LockTTL == 0 {
		cfg.Redis.LockTTL = 10 * time.Second
	}
	if cfg.Redis.LockRetryWait == 0 {
		cfg.Redis.LockRetryWait = 50 * time.Millisecond
	}
	if cfg.Redis.LockRetries == 0 {
		cfg.Redis.LockRetries = 40
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "trade-credit"
	}
	if cfg.Settlement.DeadlineTimezone == "" {
		cfg.Settlement.DeadlineTimezone = "UTC"
	}
	if cfg.Settlement.NetTermDays == 0 {
		cfg.Settlement.NetTermDays = 30
	}
	if cfg.Settlement.MaxCASRetries == 0 {
		cfg.Settlement.MaxCASRetries = 3
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB, StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("storage.driver must be one of dynamodb, postgres, sqlite (got %q)", c.Storage.Driver)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Settlement.NetTermDays < 0 {
		return fmt.Errorf("settlement.net_term_days cannot be negative")
	}
	if c.Settlement.MaxCASRetries < 0 {
		return fmt.Errorf("settlement.max_cas_retries cannot be negative")
	}
	if _, err := time.LoadLocation(c.Settlement.DeadlineTimezone); err != nil {
		return fmt.Errorf("settlement.deadline_timezone: %w", err)
	}

	if c.App.Env == "production" {
		if c.JWT.Secret == "" {
			return fmt.Errorf("jwt.secret is required in production")
		}
		if len(c.JWT.Secret) < 32 {
			return fmt.Errorf("jwt.secret must be at least 32 characters in production")
		}
		if c.Payments.Mock {
			return fmt.Errorf("payment gateway mock mode cannot be enabled in production")
		}
	}

	return nil
}

// DeadlineLocation returns the reference timezone for payment deadlines.
func (c *Config) DeadlineLocation() *time.Location {
	loc, err := time.LoadLocation(c.Settlement.DeadlineTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RedisAddr returns the host:port address for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// PostgresDSN returns the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.DBName, c.Database.SSLMode)
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
