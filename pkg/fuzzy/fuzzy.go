// Package fuzzy provides selection helpers for picking sync targets
// from the configured target list.
package fuzzy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Option represents a selectable target in the finder
type Option struct {
	Value       string
	Description string
}

// Finder presents a numbered list and reads selections from its input
type Finder struct {
	prompt  string
	options []Option
	input   io.Reader
	output  io.Writer
}

// New creates a new finder with the given prompt, reading from stdin
func New(prompt string) *Finder {
	return &Finder{
		prompt: prompt,
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// NewWithStreams creates a finder bound to explicit streams (for testing)
func NewWithStreams(prompt string, input io.Reader, output io.Writer) *Finder {
	return &Finder{
		prompt: prompt,
		input:  input,
		output: output,
	}
}

// AddOption adds a selectable option to the finder
func (f *Finder) AddOption(value, description string) {
	f.options = append(f.options, Option{
		Value:       value,
		Description: description,
	})
}

// SelectMulti displays options and lets the user pick one or more by
// number: a comma-separated list like "1,3", or "a" for all options.
func (f *Finder) SelectMulti() ([]string, error) {
	if len(f.options) == 0 {
		return nil, fmt.Errorf("no options available")
	}

	fmt.Fprintln(f.output, f.prompt)
	fmt.Fprintln(f.output, strings.Repeat("-", len(f.prompt)))

	for i, option := range f.options {
		fmt.Fprintf(f.output, "%d. %s", i+1, option.Value)
		if option.Description != "" {
			fmt.Fprintf(f.output, " - %s", option.Description)
		}
		fmt.Fprintln(f.output)
	}

	fmt.Fprintf(f.output, "\nSelect options (e.g. 1,3 or 'a' for all): ")

	reader := bufio.NewReader(f.input)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	input = strings.TrimSpace(input)

	if input == "a" || input == "A" {
		values := make([]string, len(f.options))
		for i, option := range f.options {
			values[i] = option.Value
		}
		return values, nil
	}

	var values []string
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		selection, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid selection: %s", part)
		}
		if selection < 1 || selection > len(f.options) {
			return nil, fmt.Errorf("selection out of range: %d", selection)
		}
		if seen[selection] {
			continue
		}
		seen[selection] = true
		values = append(values, f.options[selection-1].Value)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no selection made")
	}

	return values, nil
}

// IsTerminal reports whether stdin is attached to a terminal.
// Interactive selection is refused on non-terminal input.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
