package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`

	CloudinaryCloudName    string `envconfig:"CLOUDINARY_CLOUD_NAME" required:"true"`
	CloudinaryUploadPreset string `envconfig:"CLOUDINARY_UPLOAD_PRESET" required:"true"`
	FormspreeFormID        string `envconfig:"FORMSPREE_FORM_ID" default:"mnngnkop"`

	MaxUploadSizeMB int `envconfig:"MAX_UPLOAD_SIZE_MB" default:"5"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// MaxUploadSize is the logo size cap in bytes.
func (c *Config) MaxUploadSize() int64 {
	return int64(c.MaxUploadSizeMB) << 20
}
