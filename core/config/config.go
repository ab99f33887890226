package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel     OTelConfig
	OpenAI   OpenAIConfig
	Chat     ChatConfig
	Practice PracticeConfig
	Env      string
	Port     string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ChatConfig bounds the streaming chat proxy.
type ChatConfig struct {
	// RequestTimeout caps the full request/stream lifetime, matching the
	// deployed 30-second limit on the chat route.
	RequestTimeout time.Duration
}

// PracticeConfig holds the business facts that ground the assistant's
// system prompt and the availability mock.
type PracticeConfig struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	Hours       string
	Services    []string
	Memberships []string
}

// Load loads configuration from environment variables. In development it
// first loads a .env file if one exists.
func Load() (Config, error) {
	if getEnv("ASHARA_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("ASHARA_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "ashara-site"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		// An absent OPENAI_API_KEY is intentionally not a startup error:
		// it surfaces as an upstream auth failure on the first chat call.
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		},
		Chat: ChatConfig{
			RequestTimeout: getEnvDuration("CHAT_REQUEST_TIMEOUT", 30*time.Second),
		},
		Practice: PracticeConfig{
			Name:    getEnv("PRACTICE_NAME", "Ashara Health & Wellness"),
			Address: getEnv("PRACTICE_ADDRESS", "32406 S Coast Hwy, Laguna Beach, CA 92651"),
			Phone:   getEnv("PRACTICE_PHONE", "(949) 464-4770"),
			Email:   getEnv("PRACTICE_EMAIL", "hello@ashara.health"),
			Hours:   getEnv("PRACTICE_HOURS", "Monday through Friday, 9:00 AM to 5:00 PM"),
			Services: getEnvList("PRACTICE_SERVICES",
				"Naturopathic Medicine",
				"Acupuncture",
				"IV Therapy",
				"Hormone Optimization",
				"Functional Medicine",
			),
			Memberships: getEnvList("PRACTICE_MEMBERSHIPS",
				"Wellness Essentials",
				"Wellness Plus",
				"Wellness Complete",
			),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c OpenAIConfig) Enabled() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

func getEnvList(key string, fallback ...string) []string {
	if value, ok := os.LookupEnv(key); ok {
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	return fallback
}
