package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundle(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "vi"}, b.Supported())
}

func TestT_KnownKey(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	assert.Equal(t, "Logout", b.T("en", "logout"))
	assert.Equal(t, "Đăng Xuất", b.T("vi", "logout"))
	assert.Equal(t, "Hello!", b.T("en", "hello"))
	assert.Equal(t, "Xin chào!", b.T("vi", "hello"))
}

func TestT_MissingKeyDegradesToKey(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", b.T("en", "no_such_key"))
	assert.Equal(t, "no_such_key", b.T("vi", "no_such_key"))
}

func TestT_UnknownLocaleDegradesToKey(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	assert.Equal(t, "logout", b.T("fr", "logout"))
}

// Every key present in one dictionary must be present in all of them, so no
// locale silently degrades for annotated keys.
func TestDictionariesShareKeySet(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	assert.Equal(t, b.Keys("en"), b.Keys("vi"))
}

func TestResolve(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", "en"},
		{"vi", "vi"},
		{"vi-VN", "vi"},
		{"EN", "en"},
		{"fr", "en"},
		{"???", "en"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, b.resolve(tc.in), "resolve(%q)", tc.in)
	}
}
