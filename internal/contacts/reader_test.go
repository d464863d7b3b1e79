package contacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContacts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contato.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadGeneric(t *testing.T) {
	path := writeContacts(t, "Nome;Email\n"+
		"John Doe;john@x.com\n"+
		";bad\n"+
		"Jane;not-an-email\n"+
		"short-row\n"+
		"  ;  maria@y.com  \n")

	got, err := ReadGeneric(path)
	require.NoError(t, err)

	// Email-only filter: non-empty and contains "@", file order preserved.
	require.Len(t, got, 2)
	assert.Equal(t, Recipient{Email: "john@x.com"}, got[0])
	assert.Equal(t, Recipient{Email: "maria@y.com"}, got[1])
}

func TestReadGenericColumnDetection(t *testing.T) {
	// Any header containing "email" qualifies, case-insensitively.
	path := writeContacts(t, "id;E-MAIL Address;phone\n"+
		"1;first@x.com;555\n"+
		"2;second@x.com;556\n")

	got, err := ReadGeneric(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first@x.com", got[0].Email)
}

func TestReadGenericNoEmailColumn(t *testing.T) {
	path := writeContacts(t, "Nome;Telefone\nJohn;555\n")

	_, err := ReadGeneric(path)
	require.ErrorIs(t, err, ErrNoEmailColumn)
}

func TestReadGenericMissingFile(t *testing.T) {
	_, err := ReadGeneric(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadGenericLaxAddresses(t *testing.T) {
	// Anything with an "@" qualifies; no stricter validation may creep in.
	path := writeContacts(t, "Email\nweird@\n@\na b@c d\n")

	got, err := ReadGeneric(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestReadPersonalized(t *testing.T) {
	path := writeContacts(t, "Nome;Email\n"+
		"joão da silva;joao@x.com\n"+
		";semnome@x.com\n"+
		"Sem Arroba;not-an-email\n"+
		"MARIA SOUZA;maria@y.com\n")

	got, err := ReadPersonalized(path)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, Recipient{Name: "João Da Silva", Email: "joao@x.com"}, got[0])
	assert.Equal(t, Recipient{Name: "Maria Souza", Email: "maria@y.com"}, got[1])
}

func TestReadPersonalizedTitleCaseIdempotent(t *testing.T) {
	path := writeContacts(t, "Nome;Email\nJoão Da Silva;joao@x.com\n")

	got, err := ReadPersonalized(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "João Da Silva", got[0].Name)
}

func TestReadPersonalizedRequiresExactColumns(t *testing.T) {
	_, err := ReadPersonalized(writeContacts(t, "nome;Email\nJohn;john@x.com\n"))
	require.ErrorIs(t, err, ErrNoNameColumn)

	_, err = ReadPersonalized(writeContacts(t, "Nome;email\nJohn;john@x.com\n"))
	require.ErrorIs(t, err, ErrNoEmailColumn)
}

func TestReadPersonalizedColumnOrderIndependent(t *testing.T) {
	path := writeContacts(t, "Email;Nome\njohn@x.com;john doe\n")

	got, err := ReadPersonalized(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].Name)
	assert.Equal(t, "john@x.com", got[0].Email)
}
