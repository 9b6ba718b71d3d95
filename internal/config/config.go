package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"gemini"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"gemini-2.5-flash"`
		MaxTokens   int           `yaml:"max_tokens" default:"2048"`
		Temperature float32       `yaml:"temperature" default:"0.2"`
		Timeout     time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"llm"`

	Catalog struct {
		JobCount    int `yaml:"job_count" default:"100"`
		TalentCount int `yaml:"talent_count" default:"50"`
	} `yaml:"catalog"`

	Search struct {
		JobResultLimit     int `yaml:"job_result_limit" default:"5"`
		TalentResultLimit  int `yaml:"talent_result_limit" default:"4"`
		CompanyResultLimit int `yaml:"company_result_limit" default:"4"`
	} `yaml:"search"`

	Sessions struct {
		TTL             time.Duration `yaml:"ttl" default:"1h"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" default:"10m"`
	} `yaml:"sessions"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Provider = "gemini"
	config.LLM.Model = "gemini-2.5-flash"
	config.LLM.MaxTokens = 2048
	config.LLM.Temperature = 0.2
	config.LLM.Timeout = 30 * time.Second

	config.Catalog.JobCount = 100
	config.Catalog.TalentCount = 50

	config.Search.JobResultLimit = 5
	config.Search.TalentResultLimit = 4
	config.Search.CompanyResultLimit = 4

	config.Sessions.TTL = 1 * time.Hour
	config.Sessions.CleanupInterval = 10 * time.Minute

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	// An unexpanded ${VAR} placeholder means the credential was never set;
	// treat it as absent so the assistant falls back to offline mode.
	if strings.HasPrefix(config.LLM.APIKey, "${") {
		config.LLM.APIKey = ""
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// Also honor the Gemini SDK's conventional variable name
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if jobCount := os.Getenv("CATALOG_JOB_COUNT"); jobCount != "" {
		if n, err := strconv.Atoi(jobCount); err == nil && n > 0 {
			c.Catalog.JobCount = n
		}
	}

	if talentCount := os.Getenv("CATALOG_TALENT_COUNT"); talentCount != "" {
		if n, err := strconv.Atoi(talentCount); err == nil && n > 0 {
			c.Catalog.TalentCount = n
		}
	}

	if limit := os.Getenv("SEARCH_JOB_RESULT_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.Search.JobResultLimit = n
		}
	}

	if limit := os.Getenv("SEARCH_TALENT_RESULT_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.Search.TalentResultLimit = n
		}
	}

	if limit := os.Getenv("SEARCH_COMPANY_RESULT_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			c.Search.CompanyResultLimit = n
		}
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Sessions.TTL = d
		}
	}

	if interval := os.Getenv("SESSION_CLEANUP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Sessions.CleanupInterval = d
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
