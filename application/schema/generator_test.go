//go:build !wasip1

package schema

import (
	"encoding/json"
	"testing"

	"github.com/sehnryr/cargo-component/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema_Bindings(t *testing.T) {
	schema, err := GenerateSchema(&entities.Bindings{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))

	assert.Equal(t, "object", decoded["type"])
	assert.Equal(t, false, decoded["additionalProperties"])
	assert.Nil(t, decoded["required"])
	assert.Nil(t, decoded["$defs"], "nested types should be inlined")

	properties, ok := decoded["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"format", "ownership", "derives", "with", "export_prefix", "pub_export_macro"} {
		assert.Contains(t, properties, key)
	}

	with, ok := properties["with"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "object", with["type"])
}

func TestGenerateSchema_RequiredFromTags(t *testing.T) {
	type RegistryConfig struct {
		URL     string  `json:"url" jsonschema:"required"`
		Timeout *string `json:"timeout,omitempty"`
	}

	schema, err := GenerateSchema(RegistryConfig{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))
	assert.Equal(t, []interface{}{"url"}, decoded["required"])
}

func TestGenerateSchema_EmptyStruct(t *testing.T) {
	type EmptyConfig struct{}

	schema, err := GenerateSchema(EmptyConfig{})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(schema, &decoded))
	assert.NotEmpty(t, schema)
}
