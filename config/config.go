package config

import (
	"fmt"
	"os"
)

// Config holds all environment-provided settings for the portal.
// It is built once at startup and passed into the components that need it.
type Config struct {
	// Static credential pairs for the two recognized roles
	SubmitterName     string
	SubmitterPassword string
	AdminName         string
	AdminPassword     string

	// Mail settings
	ResendAPIKey   string
	MailFrom       string
	AdminEmail     string
	SubmitterEmail string

	// Externally visible base URL used in notification links
	PortalURL string

	Port     string
	DBPath   string
	UseHTTPS bool
}

// Load builds a Config from the environment.
// Credentials for both roles must be present; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		SubmitterName:     os.Getenv("USER_NAME"),
		SubmitterPassword: os.Getenv("USER_PASSWORD"),
		AdminName:         os.Getenv("ADMIN_NAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		MailFrom:          os.Getenv("EMAIL_DEFAULT_SENDER"),
		AdminEmail:        os.Getenv("EMAIL_ADMIN"),
		SubmitterEmail:    os.Getenv("EMAIL_USER_RECEIVER"),
		PortalURL:         os.Getenv("PORTAL_URL"),
		Port:              os.Getenv("PORT"),
		DBPath:            os.Getenv("DB_PATH"),
		UseHTTPS:          os.Getenv("USE_HTTPS") == "true",
	}

	if cfg.SubmitterName == "" || cfg.SubmitterPassword == "" {
		return nil, fmt.Errorf("USER_NAME and USER_PASSWORD must be set")
	}
	if cfg.AdminName == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_NAME and ADMIN_PASSWORD must be set")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "grievances.db"
	}
	if cfg.PortalURL == "" {
		cfg.PortalURL = "http://localhost:" + cfg.Port
	}

	return cfg, nil
}
