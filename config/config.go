package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"erp-admin/pkg/session"
)

// Auth modes: how the service gets the bearer it sends to the ERP API.
const (
	AuthModeStatic  = "static"  // one service token from config
	AuthModeOAuth2  = "oauth2"  // token source with refresh
	AuthModeForward = "forward" // the dashboard user's own bearer
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// ERP backend
	ERPAPI ERPAPIConfig
	Auth   AuthConfig

	// Module state
	Cache     CacheConfig
	Workspace WorkspaceConfig
	Search    SearchConfig

	// Notifications
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // per client IP; 0 disables
}

type ERPAPIConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
}

type AuthConfig struct {
	Mode   string
	Token  string
	OAuth2 OAuth2Config
}

type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
	RefreshToken string
	Grant        string // refresh_token or client_credentials
}

type CacheConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type WorkspaceConfig struct {
	TTL         time.Duration
	MaxSessions int
	InboxSize   int
}

type SearchConfig struct {
	MinQueryLength int
	DegradeOnError bool
}

type TelegramConfig struct {
	BotToken      string
	ChatID        int64
	NotifySuccess bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// ERP backend
	cfg.ERPAPI.BaseURL = viper.GetString("erp_api.base_url")
	cfg.ERPAPI.Timeout = viper.GetDuration("erp_api.timeout")
	cfg.ERPAPI.RatePerSec = viper.GetFloat64("erp_api.rate_per_sec")
	cfg.ERPAPI.Burst = viper.GetInt("erp_api.burst")
	if baseURL := viper.GetString("erp_api_url"); baseURL != "" {
		cfg.ERPAPI.BaseURL = baseURL
	}

	cfg.Auth.Mode = viper.GetString("auth.mode")
	cfg.Auth.Token = expandEnvVar(viper.GetString("auth.token"))
	if token := viper.GetString("erp_api_token"); token != "" {
		cfg.Auth.Token = token
	}
	cfg.Auth.OAuth2.ClientID = viper.GetString("auth.oauth2.client_id")
	cfg.Auth.OAuth2.ClientSecret = expandEnvVar(viper.GetString("auth.oauth2.client_secret"))
	cfg.Auth.OAuth2.TokenURL = viper.GetString("auth.oauth2.token_url")
	cfg.Auth.OAuth2.RefreshToken = expandEnvVar(viper.GetString("auth.oauth2.refresh_token"))
	cfg.Auth.OAuth2.Grant = viper.GetString("auth.oauth2.grant")
	cfg.Auth.OAuth2.Scopes = splitList(viper.GetString("auth.oauth2.scopes"))

	// Module state
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.MaxEntries = viper.GetInt("cache.max_entries")
	cfg.Workspace.TTL = viper.GetDuration("workspace.ttl")
	cfg.Workspace.MaxSessions = viper.GetInt("workspace.max_sessions")
	cfg.Workspace.InboxSize = viper.GetInt("workspace.inbox_size")
	cfg.Search.MinQueryLength = viper.GetInt("search.min_query_length")
	cfg.Search.DegradeOnError = viper.GetBool("search.degrade_on_error")

	// Notifications
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Telegram.NotifySuccess = viper.GetBool("telegram.notify_success")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 600)

	viper.SetDefault("erp_api.timeout", "30s")
	viper.SetDefault("erp_api.rate_per_sec", 0)
	viper.SetDefault("erp_api.burst", 10)
	viper.SetDefault("auth.mode", AuthModeForward)
	viper.SetDefault("auth.oauth2.grant", "refresh_token")

	viper.SetDefault("cache.ttl", "5m")
	viper.SetDefault("cache.max_entries", 256)
	viper.SetDefault("workspace.ttl", "30m")
	viper.SetDefault("workspace.max_sessions", 1000)
	viper.SetDefault("workspace.inbox_size", 50)
	viper.SetDefault("search.min_query_length", 2)
	viper.SetDefault("search.degrade_on_error", true)
}

func (cfg *Config) validate() error {
	if cfg.ERPAPI.BaseURL == "" {
		return fmt.Errorf("erp_api.base_url is required")
	}

	switch cfg.Auth.Mode {
	case AuthModeStatic:
		if cfg.Auth.Token == "" {
			return fmt.Errorf("auth.token is required in %s mode", AuthModeStatic)
		}
	case AuthModeOAuth2:
		o := cfg.Auth.OAuth2
		if o.TokenURL == "" || o.ClientID == "" {
			return fmt.Errorf("auth.oauth2.token_url and auth.oauth2.client_id are required in %s mode", AuthModeOAuth2)
		}
		if o.Grant != session.GrantRefreshToken && o.Grant != session.GrantClientCredentials {
			return fmt.Errorf("auth.oauth2.grant must be refresh_token or client_credentials, got %q", o.Grant)
		}
		if o.Grant == session.GrantRefreshToken && o.RefreshToken == "" {
			return fmt.Errorf("auth.oauth2.refresh_token is required for the refresh_token grant")
		}
	case AuthModeForward:
	default:
		return fmt.Errorf("auth.mode must be one of %s, %s, %s, got %q", AuthModeStatic, AuthModeOAuth2, AuthModeForward, cfg.Auth.Mode)
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList splits a comma separated value; viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
