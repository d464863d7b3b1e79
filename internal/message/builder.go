/*
Package message builds the multipart campaign messages: an HTML body
with the greeting substituted, plus the inline images referenced from
the template via cid: URLs.
*/
package message

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wneessen/go-mail"

	"github.com/oarkflow/campaigner/internal/assets"
	"github.com/oarkflow/campaigner/internal/config"
	"github.com/oarkflow/campaigner/internal/contacts"
)

// Placeholder is the literal token replaced with the greeting in the
// HTML template.
const Placeholder = "{nome}"

// GenericGreeting is substituted when the campaign does not personalize.
const GenericGreeting = "Cliente"

// Render substitutes every occurrence of the placeholder token with the
// greeting. Plain text replacement, no escaping: the template author
// owns the HTML.
func Render(template, greeting string) string {
	return strings.ReplaceAll(template, Placeholder, greeting)
}

// Builder produces one ready-to-submit message per recipient from a
// template and a set of preloaded inline images.
type Builder struct {
	smtp     *config.SMTP
	template string
	images   []assets.Asset
}

// NewBuilder creates a message builder for the campaign.
func NewBuilder(smtp *config.SMTP, template string, images []assets.Asset) *Builder {
	return &Builder{
		smtp:     smtp,
		template: template,
		images:   images,
	}
}

// Build assembles the message for one recipient. Images that could not
// be read are logged and skipped; the message still goes out without
// them. A recipient with no name gets the generic greeting.
func (b *Builder) Build(r contacts.Recipient) (*mail.Msg, error) {
	greeting := r.Name
	if greeting == "" {
		greeting = GenericGreeting
	}

	m := mail.NewMsg()
	if err := m.FromFormat(b.smtp.FromName, b.smtp.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(r.Email); err != nil {
		return nil, fmt.Errorf("failed to set recipient: %w", err)
	}
	m.Subject(b.smtp.Subject)
	m.SetBodyString(mail.TypeTextHTML, Render(b.template, greeting))

	for _, img := range b.images {
		if img.Err != nil {
			log.Warn("Skipping inline image", "cid", img.CID, "error", img.Err)
			continue
		}

		opts := []mail.FileOption{mail.WithFileContentID(img.CID)}
		if img.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(img.ContentType)))
		}
		if err := m.EmbedReader(img.Filename, bytes.NewReader(img.Data), opts...); err != nil {
			log.Warn("Failed to embed inline image", "cid", img.CID, "error", err)
		}
	}

	return m, nil
}
