package blob

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundtrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	key := "quotes/patient-1/doc.pdf"
	data := []byte("%PDF-1.4 contents")

	require.NoError(t, s.Put(key, data))

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, s.Delete(key))
	_, err = s.Get(key)
	assert.Error(t, err)
}

func TestFSStoreDeleteMissingKeyIsNoop(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete("quotes/never-written.pdf"))
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	root := t.TempDir()
	s, err := NewFSStore(root)
	require.NoError(t, err)

	secret := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("x"), 0o644))

	for _, key := range []string{
		"../secret.txt",
		"quotes/../../secret.txt",
		"/etc/passwd",
		".",
		"",
	} {
		_, err := s.Get(key)
		assert.Error(t, err, "key %q must be rejected", key)
		assert.Error(t, s.Put(key, []byte("y")), "key %q must be rejected", key)
	}
}

func TestFSStoreRequiresRoot(t *testing.T) {
	_, err := NewFSStore("")
	assert.Error(t, err)
}
