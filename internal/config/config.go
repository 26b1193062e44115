package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"orderdesk/m/internal/finance"
)

// Config holds application configuration values.
type Config struct {
	HTTPPort     string
	StoreDriver  string
	DatabaseDSN  string
	Location     *time.Location
	LegacyImport string
	Commission   finance.Policy
}

// fileConfig is the optional YAML overlay named by CONFIG_FILE.
type fileConfig struct {
	HTTPPort   string `yaml:"http_port"`
	Timezone   string `yaml:"timezone"`
	Commission struct {
		MarketplaceRate string `yaml:"marketplace_rate"`
		CardRate        string `yaml:"card_rate"`
	} `yaml:"commission"`
}

// Load reads configuration from .env, the environment and the optional YAML
// file, with reasonable defaults. Environment variables win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("unable to read .env file: %v", err)
	}

	var file fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		file = readFile(path)
	}

	port := firstNonEmpty(os.Getenv("HTTP_PORT"), file.HTTPPort, "8080")
	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	driver := firstNonEmpty(os.Getenv("STORE_DRIVER"), "sqlite")
	switch driver {
	case "sqlite", "pgx", "memory":
	default:
		log.Printf("invalid STORE_DRIVER value %q, defaulting to sqlite", driver)
		driver = "sqlite"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" && driver == "sqlite" {
		dsn = "orderdesk.db"
	}

	return Config{
		HTTPPort:     port,
		StoreDriver:  driver,
		DatabaseDSN:  dsn,
		Location:     loadLocation(firstNonEmpty(os.Getenv("TIMEZONE"), file.Timezone)),
		LegacyImport: os.Getenv("LEGACY_IMPORT"),
		Commission: finance.Policy{
			MarketplaceRate: rate("marketplace_rate", file.Commission.MarketplaceRate, finance.DefaultPolicy.MarketplaceRate),
			CardRate:        rate("card_rate", file.Commission.CardRate, finance.DefaultPolicy.CardRate),
		},
	}
}

func readFile(path string) fileConfig {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("unable to read config file %s: %v", path, err)
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("unable to parse config file %s: %v", path, err)
		return fileConfig{}
	}
	return cfg
}

func loadLocation(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TIMEZONE value %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}

// rate parses a commission rate; it must lie in [0, 1).
func rate(name, value string, fallback decimal.Decimal) decimal.Decimal {
	if value == "" {
		return fallback
	}
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		log.Printf("invalid commission %s value %q, defaulting to %s", name, value, fallback)
		return fallback
	}
	return d
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
