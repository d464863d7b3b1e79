/*
Package assets validates and loads the passive inputs of a campaign:
the contact file, the HTML template, and the inline images.
*/
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/oarkflow/campaigner/internal/config"
)

// Asset is one inline image, read into memory once per campaign and
// reused for every message. A read failure is recorded rather than
// propagated so that a broken image never blocks the campaign.
type Asset struct {
	CID         string
	Filename    string
	ContentType string
	Data        []byte
	Err         error
}

// Validate checks that every file the campaign needs exists before any
// other work starts. All missing files are reported together.
func Validate(cfg *config.Config) error {
	required := []struct {
		label string
		path  string
	}{
		{"contact file", cfg.Contacts},
		{"HTML template", cfg.Template},
	}
	for _, img := range cfg.Images {
		required = append(required, struct {
			label string
			path  string
		}{fmt.Sprintf("image %q", img.CID), img.Path})
	}

	var missing []string
	for _, req := range required {
		if _, err := os.Stat(req.path); os.IsNotExist(err) {
			missing = append(missing, fmt.Sprintf("  - %s: %s", req.label, req.path))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("required files not found:\n%s", strings.Join(missing, "\n"))
	}
	return nil
}

// Load reads every configured image into memory, preserving the
// declaration order. Entries that cannot be read carry their error
// instead of data.
func Load(images []config.Image) []Asset {
	loaded := make([]Asset, 0, len(images))
	for _, img := range images {
		a := Asset{
			CID:      img.CID,
			Filename: filepath.Base(img.Path),
		}

		data, err := os.ReadFile(img.Path)
		if err != nil {
			a.Err = err
		} else {
			a.Data = data
			a.ContentType = mimetype.Detect(data).String()
		}

		loaded = append(loaded, a)
	}
	return loaded
}

// ReadTemplate loads the HTML template as a string.
func ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML template: %w", err)
	}
	return string(data), nil
}
