package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFzfSetOptions(t *testing.T) {
	finder := NewFzf("Targets>")

	err := finder.SetOptions(nil)
	assert.Error(t, err)

	err = finder.SetOptions([]Option{{Value: "../service-one"}})
	require.NoError(t, err)

	// The finder keeps its own copy of the options slice.
	options := []Option{{Value: "../service-two"}}
	require.NoError(t, finder.SetOptions(options))
	options[0].Value = "mutated"
	assert.Equal(t, "../service-two", finder.options[0].Value)
}

func TestFzfSelectMultiNoOptions(t *testing.T) {
	finder := NewFzf("Targets>")

	_, err := finder.SelectMulti()
	assert.Error(t, err)
}

func TestParseSelection(t *testing.T) {
	options := []Option{
		{Value: "../service-one", Description: "git@github.com:acme/service-one.git"},
		{Value: "../service-two", Description: ""},
	}

	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:     "single line with description",
			output:   "../service-one  │  git@github.com:acme/service-one.git\n",
			expected: []string{"../service-one"},
		},
		{
			name:     "multiple lines",
			output:   "../service-one  │  git@github.com:acme/service-one.git\n../service-two\n",
			expected: []string{"../service-one", "../service-two"},
		},
		{
			name:     "blank lines ignored",
			output:   "\n../service-two\n\n",
			expected: []string{"../service-two"},
		},
		{
			name:     "unknown value passes through",
			output:   "../service-nine\n",
			expected: []string{"../service-nine"},
		},
		{
			name:     "empty output",
			output:   "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseSelection(tt.output, options))
		})
	}
}
