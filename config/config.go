package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds everything the process reads from the environment.
type Configuration struct {
	Address      string `env:"ADDRESS" envDefault:":8080"`
	MongoURI     string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"vietwoods"`

	SessionSecret string `env:"SESSION_SECRET,required"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`

	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	GCSBucket       string `env:"GCS_BUCKET"`
	CredentialsFile string `env:"CREDENTIALS_FILE_LOCATION"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	CompanyEmail string `env:"COMPANY_EMAIL"`

	MaxProductImages int `env:"MAX_PROD_IMAGES" envDefault:"6"`
}

// Load reads .env (when present) and parses the environment into a
// Configuration. Missing required vars are a startup error, not a per-request
// surprise.
func Load() (*Configuration, error) {
	_ = godotenv.Load()

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
