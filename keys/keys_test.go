package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyStringHasABinding(t *testing.T) {
	for s, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		require.True(t, ok, "no binding for %q", s)
		assert.Contains(t, binding.Keys(), s)
	}
}

func TestBindingsHaveHelp(t *testing.T) {
	for name, binding := range GlobalkeyBindings {
		help := binding.Help()
		assert.NotEmpty(t, help.Key, "key name %d", name)
		assert.NotEmpty(t, help.Desc, "key name %d", name)
		assert.True(t, key.Binding(binding).Enabled())
	}
}
