/*
Package contacts reads recipient lists from semicolon-delimited contact files.
*/
package contacts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNoEmailColumn = errors.New("no email column found in contact file header")
	ErrNoNameColumn  = errors.New("contact file header is missing the Nome column")
)

// Recipient is one entry of the send set. Name is empty for campaigns
// that use a generic greeting.
type Recipient struct {
	Email string
	Name  string
}

// ReadGeneric reads recipients from a contact file for the generic
// greeting campaign. The email column is the first header whose name
// contains "email", case-insensitively. A row qualifies when its email
// field is non-empty and contains "@"; rows with fewer fields than the
// email column index are skipped. Intentionally no further address
// validation: the qualifying set must match what the file says.
func ReadGeneric(path string) ([]Recipient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contact file: %w", err)
	}
	defer f.Close()

	r := newReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read contact file header: %w", err)
	}

	emailIdx := -1
	for i, h := range header {
		if strings.Contains(strings.ToLower(strings.TrimSpace(h)), "email") {
			emailIdx = i
			break
		}
	}
	if emailIdx < 0 {
		return nil, ErrNoEmailColumn
	}

	var recipients []Recipient
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse contact file: %w", err)
		}
		if len(row) <= emailIdx {
			continue
		}

		email := strings.TrimSpace(row[emailIdx])
		if email != "" && strings.Contains(email, "@") {
			recipients = append(recipients, Recipient{Email: email})
		}
	}

	return recipients, nil
}

// ReadPersonalized reads recipients for the personalized campaign. The
// contact file must carry columns literally named "Nome" and "Email".
// A row qualifies when both fields are non-empty after trimming and
// the email contains "@". Names are title-cased.
func ReadPersonalized(path string) ([]Recipient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contact file: %w", err)
	}
	defer f.Close()

	r := newReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read contact file header: %w", err)
	}

	nameIdx, emailIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Nome":
			nameIdx = i
		case "Email":
			emailIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, ErrNoNameColumn
	}
	if emailIdx < 0 {
		return nil, ErrNoEmailColumn
	}

	titleCaser := cases.Title(language.Portuguese)

	var recipients []Recipient
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse contact file: %w", err)
		}
		if len(row) <= nameIdx || len(row) <= emailIdx {
			continue
		}

		name := strings.TrimSpace(row[nameIdx])
		email := strings.TrimSpace(row[emailIdx])
		if name == "" || email == "" || !strings.Contains(email, "@") {
			continue
		}

		recipients = append(recipients, Recipient{
			Email: email,
			Name:  titleCaser.String(name),
		})
	}

	return recipients, nil
}

func newReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1 // Allow variable fields
	r.LazyQuotes = true
	return r
}
