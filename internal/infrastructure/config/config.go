package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	AI        AIConfig
	Assistant AssistantConfig
	Log       LogConfig
}

// HTTPConfig contém as configurações do servidor HTTP
type HTTPConfig struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	BasePath    string   `env:"API_BASE_PATH" envDefault:"/api/v1"`
	GinMode     string   `env:"GIN_MODE" envDefault:"release"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// DatabaseConfig contém as configurações de conexão com o Postgres do Supabase
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            int           `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"postgres"`
	SSLMode         string        `env:"DB_SSL_MODE" envDefault:"disable"`
	MaxConnections  int32         `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	MinConnections  int32         `env:"DB_MIN_CONNECTIONS" envDefault:"1"`
	MaxConnLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"1h"`
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// MigrationURL retorna a URL no formato esperado pelo golang-migrate
func (c DatabaseConfig) MigrationURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// AuthConfig contém o segredo usado pelo Supabase para assinar os access tokens
type AuthConfig struct {
	JWTSecret string `env:"SUPABASE_JWT_SECRET"`
	Issuer    string `env:"SUPABASE_JWT_ISSUER"`
}

// AIConfig contém as configurações do provedor de respostas
type AIConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY"`
	BaseURL     string        `env:"OPENAI_BASE_URL"`
	Model       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature float32       `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int           `env:"OPENAI_MAX_TOKENS" envDefault:"1000"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"60s"`
}

// AssistantConfig controla o pipeline do assistente
type AssistantConfig struct {
	// ContextTimeout limita a montagem do contexto; zero desativa o limite
	ContextTimeout time.Duration `env:"ASSISTANT_CONTEXT_TIMEOUT" envDefault:"0s"`
	HistoryWindow  int           `env:"ASSISTANT_HISTORY_WINDOW" envDefault:"20"`
}

// LogConfig contém as configurações de log
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
}

// Load lê as configurações das variáveis de ambiente
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração: %w", err)
	}
	return cfg, nil
}

// LoadDatabase lê apenas a configuração do banco (usada pelo comando de migração)
func LoadDatabase() (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração do banco: %w", err)
	}
	return cfg, nil
}
