/*
Package config provides configuration loading and validation for Campaigner.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Default values applied when the environment leaves a setting unset.
const (
	DefaultServer   = "smtp.gmail.com"
	DefaultPort     = 587
	DefaultFromName = "CEPEO"
	DefaultSubject  = "CEPEO - Produtos em Destaque"
)

// SMTP holds connection and sender settings sourced from the environment.
// It is built once at startup and never mutated afterwards.
type SMTP struct {
	Server    string
	Port      int
	User      string
	Password  string
	FromName  string
	FromEmail string
	Subject   string
}

// Image maps a content-ID label to an image file embedded in the message.
type Image struct {
	// CID is the label referenced from the HTML template as cid:<label>
	CID string `yaml:"cid"`

	// Path is the image file on disk
	Path string `yaml:"path"`
}

// Config represents one campaign definition
type Config struct {
	// Contacts is the semicolon-delimited contact file
	Contacts string `yaml:"contacts,omitempty"`

	// Template is the HTML template file
	Template string `yaml:"template,omitempty"`

	// Images are embedded inline, in declaration order
	Images []Image `yaml:"images,omitempty"`

	// SMTP settings come from the environment, not the campaign file
	SMTP SMTP `yaml:"-"`
}

// defaults returns the built-in campaign layout used when no campaign
// file overrides it.
func defaults() *Config {
	return &Config{
		Contacts: "contato.csv",
		Template: "email_natal.html",
		Images: []Image{
			{CID: "logo", Path: "arquivos/logo.webp"},
			{CID: "natal", Path: "arquivos/natal.png"},
		},
	}
}

// Load reads the campaign file at path and fills in defaults for
// anything it leaves out. A missing file is not an error: the built-in
// defaults are used as-is.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err != nil && os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read campaign file: %w", err)
	default:
		// Expand environment variables
		data = []byte(os.ExpandEnv(string(data)))

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse campaign file: %w", err)
		}
	}

	if err := mergo.Merge(cfg, defaults()); err != nil {
		return nil, fmt.Errorf("failed to apply campaign defaults: %w", err)
	}

	smtp, err := SMTPFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.SMTP = *smtp

	return cfg, nil
}

// SMTPFromEnv builds the SMTP settings from the process environment.
// EMAIL_USER and EMAIL_PASSWORD are mandatory; everything else falls
// back to documented defaults.
func SMTPFromEnv() (*SMTP, error) {
	cfg := &SMTP{
		Server:    envOr("SMTP_SERVER", DefaultServer),
		Port:      DefaultPort,
		User:      os.Getenv("EMAIL_USER"),
		Password:  os.Getenv("EMAIL_PASSWORD"),
		FromName:  envOr("FROM_NAME", DefaultFromName),
		FromEmail: os.Getenv("FROM_EMAIL"),
		Subject:   envOr("EMAIL_SUBJECT", DefaultSubject),
	}

	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", raw, err)
		}
		cfg.Port = port
	}

	if cfg.User == "" || cfg.Password == "" {
		return nil, fmt.Errorf("EMAIL_USER and EMAIL_PASSWORD must be set in the environment or .env file")
	}

	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.User
	}

	return cfg, nil
}

// Validate validates the campaign configuration
func (c *Config) Validate() error {
	if c.Contacts == "" {
		return fmt.Errorf("contacts file is required")
	}
	if c.Template == "" {
		return fmt.Errorf("template file is required")
	}

	cids := make(map[string]bool)
	for i, img := range c.Images {
		if img.CID == "" {
			return fmt.Errorf("images[%d]: cid is required", i)
		}
		if img.Path == "" {
			return fmt.Errorf("images[%d]: path is required", i)
		}
		if cids[img.CID] {
			return fmt.Errorf("duplicate image cid: %s", img.CID)
		}
		cids[img.CID] = true
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DefaultTemplate returns a starter campaign file.
func DefaultTemplate() string {
	return `# Campaigner configuration
# Contact file: one header row, fields separated by ";"
contacts: contato.csv

# HTML template: every {nome} token is replaced with the greeting,
# images are referenced as cid:<label>
template: email_natal.html

images:
  - cid: logo
    path: arquivos/logo.webp
  - cid: natal
    path: arquivos/natal.png
`
}
