package entities_test

import (
	"testing"

	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "should accept a single lowercase word", input: "proxy"},
		{name: "should accept kebab case words", input: "http-proxy-v2"},
		{name: "should accept an uppercase word", input: "HTTP-proxy"},
		{name: "should reject an empty identifier", input: "", wantErr: true},
		{name: "should reject a leading digit", input: "2proxy", wantErr: true},
		{name: "should reject mixed case within a word", input: "Proxy", wantErr: true},
		{name: "should reject an empty word", input: "http--proxy", wantErr: true},
		{name: "should reject a trailing dash", input: "proxy-", wantErr: true},
		{name: "should reject underscores", input: "http_proxy", wantErr: true},
		{name: "should reject a namespace separator", input: "wasi:http", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entities.ValidateID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParsePackageName(t *testing.T) {
	t.Run("should split namespace and name", func(t *testing.T) {
		name, err := entities.ParsePackageName("wasi:http")
		require.NoError(t, err)
		assert.Equal(t, entities.PackageName{Namespace: "wasi", Name: "http"}, name)
		assert.Equal(t, "wasi:http", name.String())
		assert.False(t, name.IsZero())
	})

	t.Run("should accept kebab case halves", func(t *testing.T) {
		name, err := entities.ParsePackageName("my-org:cli-tools")
		require.NoError(t, err)
		assert.Equal(t, "my-org", name.Namespace)
		assert.Equal(t, "cli-tools", name.Name)
	})

	invalid := []string{"", "wasi", "wasi:", ":http", "wasi:http:extra", "WASI:http", "wasi:Http", "wasi:http/proxy"}
	for _, input := range invalid {
		t.Run("should reject "+input, func(t *testing.T) {
			_, err := entities.ParsePackageName(input)
			assert.Error(t, err)
		})
	}

	t.Run("should name the offending half", func(t *testing.T) {
		_, err := entities.ParsePackageName("wasi:Http")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "`Http`")
	})
}

func TestPackageName_MarshalText(t *testing.T) {
	text, err := entities.PackageName{Namespace: "wasi", Name: "cli"}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "wasi:cli", string(text))
	assert.True(t, entities.PackageName{}.IsZero())
}
