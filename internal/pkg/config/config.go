package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   API keys, admin credentials), security settings
// - default: Values common across all environments (timeouts, asset paths,
//   pacing window), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Admin        AdminConfig
	Gemini       GeminiConfig
	Browser      BrowserConfig
	WhatsApp     WhatsAppConfig
	Assets       AssetsConfig
	Distribution DistributionConfig
	Scheduler    SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AdminConfig holds the single management principal allowed to mutate
// users, subscribers and the holiday calendar.
type AdminConfig struct {
	Email        string `envconfig:"ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"` // bcrypt
}

type GeminiConfig struct {
	APIKey     string        `envconfig:"GEMINI_API_KEY" required:"true"`
	TextModel  string        `envconfig:"GEMINI_TEXT_MODEL" default:"gemini-flash-latest"`
	ImageModel string        `envconfig:"GEMINI_IMAGE_MODEL" default:"gemini-3-pro-image-preview"`
	Timeout    time.Duration `envconfig:"GEMINI_TIMEOUT" default:"120s"`
}

// BrowserConfig drives the browser-automation image backend. The command is
// expected to read a prompt from stdin and print a base64-encoded PNG to
// stdout.
type BrowserConfig struct {
	Command string        `envconfig:"BROWSER_COMMAND" default:"python3 scripts/generate_image.py"`
	Timeout time.Duration `envconfig:"BROWSER_TIMEOUT" default:"120s"`
}

type WhatsAppConfig struct {
	SendMediaURL   string        `envconfig:"WHATSAPP_SEND_MEDIA_URL" required:"true"`
	DefaultPhone   string        `envconfig:"WHATSAPP_DEFAULT_PHONE" default:"8299396255"`
	DefaultMail    string        `envconfig:"POST_DEFAULT_MAIL" default:"ANDROCODERS21@GMAIL.COM"`
	DefaultWebsite string        `envconfig:"POST_DEFAULT_WEBSITE" default:"ANDROCODERS.IN"`
	Timeout        time.Duration `envconfig:"WHATSAPP_TIMEOUT" default:"60s"`
}

type AssetsConfig struct {
	OverlayPath string `envconfig:"ASSET_OVERLAY_PATH" default:"assets/overlay.png"`
	LogoPath    string `envconfig:"ASSET_LOGO_PATH" default:"assets/logo.png"`
	FontPath    string `envconfig:"ASSET_FONT_PATH" default:"assets/GoogleSans_17pt-SemiBold.ttf"`
}

// DistributionConfig bounds the randomized pacing window between consecutive
// sends within one job.
type DistributionConfig struct {
	DelayMin time.Duration `envconfig:"DISTRIBUTION_DELAY_MIN" default:"30s"`
	DelayMax time.Duration `envconfig:"DISTRIBUTION_DELAY_MAX" default:"300s"`
}

type SchedulerConfig struct {
	Enabled bool   `envconfig:"SCHEDULER_ENABLED" default:"false"`
	Spec    string `envconfig:"SCHEDULER_SPEC" default:"0 9 * * *"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
	}
}
