package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	devJWTSecret   = "dev_secret"
)

// Cloudinary holds the signed-upload credentials. An empty CloudName
// disables uploads.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Config is every setting the server reads at startup.
type Config struct {
	Port        string
	Environment string

	MongoURI      string
	MongoDatabase string

	RedisAddress    string
	RedisPassword   string
	RateLimitPrefix string

	ReportDailyLimit  int
	InquiryDailyLimit int

	JWTSecret string
	TokenTTL  time.Duration

	AllowedOrigins []string
	TrustedProxies []string
	Cloudinary     Cloudinary

	LogLevel       string
	LogFormat      string
	BodyLimitBytes int64
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "4000")
	v.SetDefault("GO_ENV", EnvDevelopment)
	v.SetDefault("MONGODB_DATABASE", "tenantguard")
	v.SetDefault("RATE_LIMIT_PREFIX", "ratelimit")
	v.SetDefault("REPORT_DAILY_LIMIT", 20)
	v.SetDefault("INQUIRY_DAILY_LIMIT", 10)
	v.SetDefault("TOKEN_TTL", "168h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CLOUDINARY_UPLOAD_FOLDER", "tenant-guard")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("BODY_LIMIT_BYTES", 25<<20)
}

// LoadDotEnv loads .env files into the process environment. A missing file
// is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:              v.GetString("PORT"),
		Environment:       strings.ToLower(v.GetString("GO_ENV")),
		MongoURI:          v.GetString("MONGODB_URI"),
		MongoDatabase:     v.GetString("MONGODB_DATABASE"),
		RedisAddress:      v.GetString("REDIS_ADDRESS"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RateLimitPrefix:   v.GetString("RATE_LIMIT_PREFIX"),
		ReportDailyLimit:  v.GetInt("REPORT_DAILY_LIMIT"),
		InquiryDailyLimit: v.GetInt("INQUIRY_DAILY_LIMIT"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenTTL:          v.GetDuration("TOKEN_TTL"),
		AllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		TrustedProxies:    splitList(v.GetString("TRUSTED_PROXIES")),
		Cloudinary: Cloudinary{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
			Folder:    v.GetString("CLOUDINARY_UPLOAD_FOLDER"),
		},
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		BodyLimitBytes: v.GetInt64("BODY_LIMIT_BYTES"),
	}

	if cfg.JWTSecret == "" && !cfg.IsProduction() {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings and value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.ReportDailyLimit <= 0 {
		errs = append(errs, fmt.Errorf("REPORT_DAILY_LIMIT must be positive, got %d", c.ReportDailyLimit))
	}
	if c.InquiryDailyLimit <= 0 {
		errs = append(errs, fmt.Errorf("INQUIRY_DAILY_LIMIT must be positive, got %d", c.InquiryDailyLimit))
	}
	if c.BodyLimitBytes <= 0 {
		errs = append(errs, fmt.Errorf("BODY_LIMIT_BYTES must be positive, got %d", c.BodyLimitBytes))
	}
	for _, proxy := range c.TrustedProxies {
		if !validProxy(proxy) {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy))
		}
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

func validProxy(s string) bool {
	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		return err == nil
	}
	return net.ParseIP(s) != nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
