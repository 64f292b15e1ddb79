package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Run("expands template variables", func(t *testing.T) {
		t.Setenv("PARLEY_TEST_KEY", "sk-or-abc")
		out := ExpandEnv([]byte("api_key: {{.PARLEY_TEST_KEY}}"))
		assert.Equal(t, "api_key: sk-or-abc", string(out))
	})

	t.Run("missing variable expands to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("api_key: {{.PARLEY_DEFINITELY_UNSET}}"))
		assert.Equal(t, "api_key: ", string(out))
	})

	t.Run("dollar signs pass through untouched", func(t *testing.T) {
		in := []byte(`pattern: "^secret.*$"` + "\npassword: p@ss$word")
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("malformed template returns original", func(t *testing.T) {
		in := []byte("key: {{.UNCLOSED")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
