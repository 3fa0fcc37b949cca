package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Import  ImportConfig
	Datev   DatevConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type LoggingConfig struct {
	Level string
}

type ImportConfig struct {
	MaxUploadBytes int
	// AutoMatch runs the reconciliation pass after every successful import
	// unless the request overrides it.
	AutoMatch bool
}

type DatevConfig struct {
	DefaultTaxRate decimal.Decimal
	ExportedBy     string
	// Companies seeds the export header identifiers of known companies.
	Companies []CompanyProfileConfig
}

type CompanyProfileConfig struct {
	CompanyID       string
	AdvisorNumber   string
	ClientNumber    string
	FiscalYearStart int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Import: ImportConfig{
			MaxUploadBytes: getIntEnv("IMPORT_MAX_UPLOAD_BYTES", 10<<20),
			AutoMatch:      getBoolEnv("IMPORT_AUTO_MATCH", false),
		},
		Datev: DatevConfig{
			DefaultTaxRate: getDecimalEnv("DATEV_DEFAULT_TAX_RATE", decimal.NewFromInt(19)),
			ExportedBy:     getEnv("DATEV_EXPORTED_BY", "statement-reconciler"),
			Companies:      getCompaniesEnv("DATEV_COMPANIES"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		log.Printf("Invalid decimal for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getCompaniesEnv reads comma separated "company:advisor:client[:fiscal start
// month]" entries. Malformed entries are skipped.
func getCompaniesEnv(key string) []CompanyProfileConfig {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return nil
	}

	var companies []CompanyProfileConfig
	for _, entry := range strings.Split(valueStr, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) < 3 || len(parts) > 4 || strings.TrimSpace(parts[0]) == "" {
			log.Printf("Invalid company entry in %s: %q, skipped", key, entry)
			continue
		}

		company := CompanyProfileConfig{
			CompanyID:       strings.TrimSpace(parts[0]),
			AdvisorNumber:   strings.TrimSpace(parts[1]),
			ClientNumber:    strings.TrimSpace(parts[2]),
			FiscalYearStart: 1,
		}
		if len(parts) == 4 {
			month, err := strconv.Atoi(strings.TrimSpace(parts[3]))
			if err != nil || month < 1 || month > 12 {
				log.Printf("Invalid fiscal year start in %s: %q, skipped", key, entry)
				continue
			}
			company.FiscalYearStart = month
		}
		companies = append(companies, company)
	}

	return companies
}
