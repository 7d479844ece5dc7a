package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Calendar providers.
const (
	ProviderLuma   = "luma"
	ProviderGoogle = "google"
	ProviderMock   = "mock"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Room booking specifics
	Calendar       CalendarConfig
	Luma           LumaConfig
	GoogleCalendar GoogleCalendarConfig
	Booking        BookingConfig
	Telegram       TelegramConfig
	RateLimit      RateLimitConfig
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

type CalendarConfig struct {
	Provider string // luma, google or mock
	Timezone string // IANA name attached to created events
}

type LumaConfig struct {
	APIKey          string
	BaseURL         string
	PageSize        int
	HostAccessLevel string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	PageSize        int
}

type BookingConfig struct {
	BufferMinutes int
	RoomsPath     string
	FailHosts     []string // mock provider only
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	NgrokAPIURL string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Calendar
	cfg.Calendar.Provider = strings.ToLower(v.GetString("calendar.provider"))
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")

	cfg.Luma.APIKey = v.GetString("luma.api_key")
	cfg.Luma.BaseURL = v.GetString("luma.base_url")
	cfg.Luma.PageSize = v.GetInt("luma.page_size")
	cfg.Luma.HostAccessLevel = v.GetString("luma.host_access_level")
	if lumaKey := v.GetString("luma_api_key"); lumaKey != "" {
		cfg.Luma.APIKey = lumaKey
	}

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.PageSize = v.GetInt("google_calendar.page_size")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Booking
	cfg.Booking.BufferMinutes = v.GetInt("booking.buffer_minutes")
	cfg.Booking.RoomsPath = v.GetString("booking.rooms_path")
	cfg.Booking.FailHosts = splitList(v.GetStringSlice("booking.fail_hosts"))

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Calendar.Provider {
	case ProviderLuma:
		if cfg.Luma.APIKey == "" {
			return errors.New("luma.api_key is required for the luma provider")
		}
	case ProviderGoogle:
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return errors.New("google_calendar.credentials_path is required for the google provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown calendar.provider %q (want luma, google or mock)", cfg.Calendar.Provider)
	}
	if cfg.Booking.BufferMinutes < 0 {
		return fmt.Errorf("booking.buffer_minutes must not be negative, got %d", cfg.Booking.BufferMinutes)
	}
	if cfg.Booking.RoomsPath == "" {
		return errors.New("booking.rooms_path is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("calendar.provider", ProviderMock)
	v.SetDefault("calendar.timezone", "America/Los_Angeles")
	v.SetDefault("luma.base_url", "https://api.lu.ma/public/v1")
	v.SetDefault("luma.page_size", 50)
	v.SetDefault("luma.host_access_level", "manager")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.page_size", 250)
	v.SetDefault("booking.buffer_minutes", 15)
	v.SetDefault("booking.rooms_path", "config/rooms.yaml")
	v.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")
	v.SetDefault("rate_limit.requests_per_min", 60)
}

// splitList flattens comma separated entries, since env vars arrive as one string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
