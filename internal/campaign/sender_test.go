package campaign

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/oarkflow/campaigner/internal/config"
)

func smtpForPort(port int) *config.SMTP {
	return &config.SMTP{
		Server:    "smtp.example.com",
		Port:      port,
		User:      "user@example.com",
		Password:  "secret",
		FromName:  "CEPEO",
		FromEmail: "user@example.com",
		Subject:   "Produtos em Destaque",
	}
}

func TestClientOptionsHonorConfiguredPort(t *testing.T) {
	// Every configured port must be dialed as-is, including 25, which
	// go-mail's TLS policy option would otherwise rewrite to 587.
	for _, port := range []int{25, 465, 587, 2525} {
		smtp := smtpForPort(port)

		c, err := mail.NewClient(smtp.Server, clientOptions(smtp)...)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("smtp.example.com:%d", port), c.ServerAddr())
	}
}

func TestClientOptionsUpgradeViaSTARTTLS(t *testing.T) {
	// Anything but 465 starts in plaintext and upgrades before auth;
	// the upgrade is mandatory, never opportunistic.
	for _, port := range []int{25, 587, 2525} {
		c, err := mail.NewClient("smtp.example.com", clientOptions(smtpForPort(port))...)
		require.NoError(t, err)
		assert.Equal(t, mail.TLSMandatory.String(), c.TLSPolicy())
	}
}

func TestClientOptionsImplicitTLSOn465(t *testing.T) {
	c, err := mail.NewClient("smtp.example.com", clientOptions(smtpForPort(465))...)
	require.NoError(t, err)

	// Implicit TLS keeps the wire encrypted from the first byte, and
	// WithSSL must not disturb the configured port.
	assert.Equal(t, "smtp.example.com:465", c.ServerAddr())
}
