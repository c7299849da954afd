package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port               string `envconfig:"PORT" default:"4000"`
	Environment        string `envconfig:"ENV" default:"development"`
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`

	// Session signing. When JWT_SECRET_NAME is set the secret is fetched from
	// GCP Secret Manager; otherwise JWT_SECRET is used, and when neither is
	// set a random per-process secret is generated (sessions then do not
	// survive a restart).
	JWTSecret     string `envconfig:"JWT_SECRET"`
	JWTSecretName string `envconfig:"JWT_SECRET_NAME"`
	GCPProjectID  string `envconfig:"GCP_PROJECT_ID"`
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"168"`

	// Free-tier limits.
	FreeCharLimit  int `envconfig:"FREE_CHAR_LIMIT" default:"200"`
	FreeDailyLimit int `envconfig:"FREE_CONVERSION_LIMIT" default:"5"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
