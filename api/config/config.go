package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds the application configuration
type Config struct {
	StoreDriver     string
	DatabaseURL     string
	StripeSecretKey string
	StripePlanID    string
	// Optional: enables the shared Redis lock; the in-process lock is used otherwise
	RedisURL       string
	LockTTLSeconds string
	// Optional: comma separated brokers for reconciliation records
	KafkaBrokers             string
	KafkaReconciliationTopic string
	PruneEmptyAggregates     string
	// Optional: id:email pairs seeding the user directory when STORE_DRIVER=memory
	MemoryUsers string
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		// Check if .env file exists in current directory
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Load .env file
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		// Move up one directory
		currentDir = filepath.Dir(currentDir)
	}

	// Get required environment variables
	requiredVars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"StoreDriver", "STORE_DRIVER", "Store Driver", false},
		// Required unless STORE_DRIVER=memory, checked below
		{"DatabaseURL", "DATABASE_URL", "Database URL", false},
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", true},
		{"StripePlanID", "STRIPE_PLAN_ID", "Stripe Plan ID", true},
		{"RedisURL", "REDIS_URL", "Redis URL", false},
		{"LockTTLSeconds", "LOCK_TTL_SECONDS", "Lock TTL Seconds", false},
		{"KafkaBrokers", "KAFKA_BROKERS", "Kafka Brokers", false},
		{"KafkaReconciliationTopic", "KAFKA_RECONCILIATION_TOPIC", "Kafka Reconciliation Topic", false},
		{"PruneEmptyAggregates", "PRUNE_EMPTY_AGGREGATES", "Prune Empty Aggregates", false},
		{"MemoryUsers", "MEMORY_USERS", "Memory Users", false},
		// Optional integration base URL for remote tests
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
		// Optional server ports
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"GRPCPort", "GRPC_PORT", "gRPC Port", false},
	}

	for _, v := range requiredVars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.StoreDriver == "" {
		config.StoreDriver = StoreDriverPostgres
	}
	if config.LockTTLSeconds == "" {
		config.LockTTLSeconds = "30"
	}
	if config.KafkaReconciliationTopic == "" {
		config.KafkaReconciliationTopic = "payment-processor.reconciliation"
	}
	if config.PruneEmptyAggregates == "" {
		config.PruneEmptyAggregates = "false"
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.GRPCPort == "" {
		config.GRPCPort = "50051"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("missing required environment variable: Database URL")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}
	if ttl, err := strconv.Atoi(c.LockTTLSeconds); err != nil || ttl <= 0 {
		return fmt.Errorf("invalid LOCK_TTL_SECONDS %q: want a positive integer", c.LockTTLSeconds)
	}
	if _, err := strconv.ParseBool(c.PruneEmptyAggregates); err != nil {
		return fmt.Errorf("invalid PRUNE_EMPTY_AGGREGATES %q: %v", c.PruneEmptyAggregates, err)
	}
	if _, err := c.SeedUsers(); err != nil {
		return err
	}
	return nil
}

// SeedUsers parses MemoryUsers ("u1:a@b.co,u2:c@d.co") into an id to email map.
func (c *Config) SeedUsers() (map[string]string, error) {
	users := map[string]string{}
	for _, pair := range strings.Split(c.MemoryUsers, ",") {
		if pair = strings.TrimSpace(pair); pair == "" {
			continue
		}
		id, email, ok := strings.Cut(pair, ":")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid MEMORY_USERS entry %q: want id:email", pair)
		}
		users[id] = email
	}
	return users, nil
}

// LockTTL is the lease length of the Redis owner lock.
func (c *Config) LockTTL() time.Duration {
	ttl, _ := strconv.Atoi(c.LockTTLSeconds)
	return time.Duration(ttl) * time.Second
}

// Brokers splits KafkaBrokers, dropping blanks.
func (c *Config) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (c *Config) PruneEmpty() bool {
	prune, _ := strconv.ParseBool(c.PruneEmptyAggregates)
	return prune
}
