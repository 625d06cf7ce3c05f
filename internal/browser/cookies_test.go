package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCookies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	data := `[
		{"name":"li_at","value":"abc","domain":".linkedin.com","path":"/","expires":1893456000,"httpOnly":true,"secure":true,"sameSite":"None"},
		{"name":"lang","value":"v=2&lang=en-us","domain":".linkedin.com"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cookies, err := LoadCookies(path)
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	first := cookies[0]
	assert.Equal(t, "li_at", first.Name)
	assert.Equal(t, ".linkedin.com", *first.Domain)
	assert.Equal(t, float64(1893456000), *first.Expires)
	assert.True(t, *first.HttpOnly)
	assert.True(t, *first.Secure)
	assert.Equal(t, playwright.SameSiteAttributeNone, first.SameSite)

	second := cookies[1]
	assert.Equal(t, "/", *second.Path)
	assert.Nil(t, second.Expires)
	assert.Nil(t, second.SameSite)
}

func TestLoadCookiesMissingFile(t *testing.T) {
	_, err := LoadCookies(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
