package fuzzy

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFinder(input string) (*Finder, *bytes.Buffer) {
	out := &bytes.Buffer{}
	finder := NewWithStreams("Select targets:", strings.NewReader(input), out)
	finder.AddOption("../service-one", "git@github.com:acme/service-one.git")
	finder.AddOption("../service-two", "git@github.com:acme/service-two.git")
	finder.AddOption("../service-three", "")
	return finder, out
}

func TestSelectMultiCommaSeparated(t *testing.T) {
	finder, out := newTestFinder("1, 3\n")

	values, err := finder.SelectMulti()
	require.NoError(t, err)
	assert.Equal(t, []string{"../service-one", "../service-three"}, values)
	assert.Contains(t, out.String(), "1. ../service-one - git@github.com:acme/service-one.git")
}

func TestSelectMultiSingleChoice(t *testing.T) {
	finder, _ := newTestFinder("2\n")

	values, err := finder.SelectMulti()
	require.NoError(t, err)
	assert.Equal(t, []string{"../service-two"}, values)
}

func TestSelectMultiAll(t *testing.T) {
	finder, _ := newTestFinder("a\n")

	values, err := finder.SelectMulti()
	require.NoError(t, err)
	assert.Equal(t, []string{"../service-one", "../service-two", "../service-three"}, values)
}

func TestSelectMultiDeduplicates(t *testing.T) {
	finder, _ := newTestFinder("2,2,1\n")

	values, err := finder.SelectMulti()
	require.NoError(t, err)
	assert.Equal(t, []string{"../service-two", "../service-one"}, values)
}

func TestSelectInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a number", "one\n"},
		{"zero", "0\n"},
		{"out of range", "9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder, _ := newTestFinder(tt.input)
			_, err := finder.SelectMulti()
			assert.Error(t, err)
		})
	}
}

func TestSelectMultiNoOptions(t *testing.T) {
	finder := NewWithStreams("Select:", strings.NewReader("1\n"), &bytes.Buffer{})

	_, err := finder.SelectMulti()
	assert.Error(t, err)
}
