package config

import (
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/go-sql-driver/mysql"
	"github.com/reactpress/reactpress/pkg/natsinfo"
	"go.uber.org/fx"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type HTTPConfig struct {
	Port      string `env:"SERVER_PORT" envDefault:"5002"`
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
}

func (c *HTTPConfig) Addr() string {
	return ":" + c.Port
}

func NewHTTPConfig() (*HTTPConfig, error) {
	var config HTTPConfig
	if err := ParseEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	Username string `env:"DB_USER" envDefault:"reactpress"`
	Password string `env:"DB_PASSWD" envDefault:"reactpress"`
	Database string `env:"DB_DATABASE" envDefault:"reactpress"`
}

// GetDSN builds the MySQL DSN. parseTime maps DATETIME columns onto
// time.Time, multiStatements lets one migration file carry the schema.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func NewDatabaseConfig() (*DatabaseConfig, error) {
	var config DatabaseConfig
	if err := ParseEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

type FileConfig struct {
	// Dir is where uploaded media lands on disk.
	Dir string `env:"FILE_DIR" envDefault:"./uploads"`
	// BaseURL prefixes the public URL of stored files.
	BaseURL string `env:"FILE_BASE_URL" envDefault:"/uploads"`
}

func NewFileConfig() (*FileConfig, error) {
	var config FileConfig
	if err := ParseEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

type SeedConfig struct {
	GoogleAnalyticsID string `env:"GOOGLE_ANALYTICS_ID"`
}

func NewSeedConfig() (*SeedConfig, error) {
	var config SeedConfig
	if err := ParseEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func NewNatsConfig() (*natsinfo.NatsConfig, error) {
	var config natsinfo.NatsConfig
	if err := ParseEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

type NewDatabaseConnectionParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *DatabaseConfig
}

func NewDatabaseConnection(params NewDatabaseConnectionParams) (*sql.DB, error) {
	conn, err := sql.Open("mysql", params.Config.GetDSN())
	if err != nil {
		return nil, err
	}
	params.Lifecycle.Append(fx.StopHook(conn.Close))
	return conn, nil
}
