package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"
	_ "time/tzdata" // fixed timezone must resolve on hosts without zoneinfo

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr            string        `yaml:"addr" validate:"required"`
	Timezone        string        `yaml:"timezone" validate:"required"`
	PlaceholderName string        `yaml:"placeholder_name" validate:"required"`
	TitleMaxLen     int           `yaml:"title_max_len" validate:"required,gt=0"`
	BodyMaxLen      int           `yaml:"body_max_len" validate:"required,gt=0"`
	NameMaxLen      int           `yaml:"name_max_len" validate:"required,gt=0"`
	ReadTimeout     int           `yaml:"read_timeout" validate:"gte=0"`  // seconds
	WriteTimeout    int           `yaml:"write_timeout" validate:"gte=0"` // seconds
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	SecureCookies   bool          `yaml:"secure_cookies"` // served behind https, enables HSTS
	AllowedOrigins  []string      `yaml:"cors_allowed_origins"`
}

type Private struct {
	Storage Storage `yaml:"storage"`
}

type Storage struct {
	Driver     string `yaml:"driver" validate:"required,oneof=sqlite postgres"`
	SQLitePath string `yaml:"sqlite_path" validate:"required_if=Driver sqlite"`
	Pg         Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

// Default returns a config usable without any files: sqlite in the working
// directory, Asia/Tokyo timestamps.
func Default() *Config {
	return &Config{
		Public: Public{
			Addr:            ":8080",
			Timezone:        "Asia/Tokyo",
			PlaceholderName: "anonymous",
			TitleMaxLen:     100,
			BodyMaxLen:      10_000,
			NameMaxLen:      50,
			ReadTimeout:     5,
			WriteTimeout:    10,
			LogLevel:        "info",
		},
		Private: Private{
			Storage: Storage{
				Driver:     DriverSQLite,
				SQLitePath: "bbs.db",
			},
		},
	}
}

// Location resolves the configured timezone. Validated in MustLoad, so an
// error here means the config was built by hand.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Public.Timezone)
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Public.ReadTimeout) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Public.WriteTimeout) * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder on top of
// Default(), applies environment overrides and validates the result.
func MustLoad(configFolder string) *Config {
	cfg := Default()
	mustLoadPath(path.Join(configFolder, "public.yaml"), &cfg.Public)
	mustLoadPath(path.Join(configFolder, "private.yaml"), &cfg.Private)

	// .env is optional
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		panic(err.Error())
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BBS_ADDR"); v != "" {
		cfg.Public.Addr = v
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.Public.Addr = ":" + port
	}
	if v := os.Getenv("BBS_LOG_LEVEL"); v != "" {
		cfg.Public.LogLevel = v
	}
	if v := os.Getenv("BBS_STORAGE_DRIVER"); v != "" {
		cfg.Private.Storage.Driver = v
	}
	if v := os.Getenv("BBS_SQLITE_PATH"); v != "" {
		cfg.Private.Storage.SQLitePath = v
	}
	if v := os.Getenv("BBS_PG_PASSWORD"); v != "" {
		cfg.Private.Storage.Pg.Password = v
	}
	if v := os.Getenv("BBS_PG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Private.Storage.Pg.Port = port
		}
	}
}

func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("invalid config: unknown timezone %q: %w", cfg.Public.Timezone, err)
	}
	if cfg.Private.Storage.Driver == DriverPostgres {
		pg := cfg.Private.Storage.Pg
		if pg.Host == "" || pg.Port == 0 || pg.User == "" || pg.Dbname == "" {
			return fmt.Errorf("invalid config: postgres driver requires storage.pg host, port, user and dbname")
		}
	}
	return nil
}
