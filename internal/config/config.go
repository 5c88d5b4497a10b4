package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// getEnv obtiene una variable de entorno o un valor por defecto
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt obtiene una variable de entorno como entero
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration acepta "10s", "1m" o un número de segundos.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type Config struct {
	Port           int           `yaml:"port" validate:"gt=0,lte=65535"`
	Neo4jURI       string        `yaml:"neo4jURI" validate:"required"`
	Neo4jUser      string        `yaml:"neo4jUser" validate:"required"`
	Neo4jPassword  string        `yaml:"neo4jPassword"`
	Neo4jDatabase  string        `yaml:"neo4jDatabase" validate:"required"`
	AllowedOrigins []string      `yaml:"allowedOrigins" validate:"dive,required"`
	SeedFile       string        `yaml:"seedFile"`
	QueryTimeout   time.Duration `yaml:"queryTimeout" validate:"gte=0"`
	CacheTTL       time.Duration `yaml:"cacheTTL" validate:"gte=0"`
}

func defaults() Config {
	return Config{
		Port:           3001,
		Neo4jURI:       "bolt://localhost:7687",
		Neo4jUser:      "neo4j",
		Neo4jPassword:  "12345678",
		Neo4jDatabase:  "neo4j",
		AllowedOrigins: []string{"http://localhost:3000"},
		QueryTimeout:   10 * time.Second,
	}
}

// LoadConfig carga .env (si existe), luego el archivo YAML indicado por
// CONFIG_FILE (por defecto config.yml, opcional) y por último las variables
// de entorno, que tienen prioridad. El resultado se valida.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	cfg := defaults()
	if err := loadFile(getEnv("CONFIG_FILE", "config.yml"), &cfg); err != nil {
		return nil, err
	}
	applyEnv(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnvAsInt("PORT", cfg.Port)
	cfg.Neo4jURI = getEnv("NEO4J_URI", cfg.Neo4jURI)
	cfg.Neo4jUser = getEnv("NEO4J_USER", cfg.Neo4jUser)
	cfg.Neo4jPassword = getEnv("NEO4J_PASSWORD", cfg.Neo4jPassword)
	cfg.Neo4jDatabase = getEnv("NEO4J_DATABASE", cfg.Neo4jDatabase)
	cfg.AllowedOrigins = getEnvAsList("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.SeedFile = getEnv("SEED_FILE", cfg.SeedFile)
	cfg.QueryTimeout = getEnvAsDuration("QUERY_TIMEOUT", cfg.QueryTimeout)
	cfg.CacheTTL = getEnvAsDuration("CACHE_TTL", cfg.CacheTTL)
}
