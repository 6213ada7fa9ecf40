package fuzzy

import (
	"fmt"
	"io"
	"os"
	"strings"

	fzf "github.com/junegunn/fzf/src"
)

// FzfRunner defines the interface for running fzf
type FzfRunner interface {
	Run(opts *fzf.Options) (int, error)
}

// DefaultFzfRunner implements the FzfRunner interface using the real fzf library
type DefaultFzfRunner struct{}

// Run executes fzf with the given options
func (r *DefaultFzfRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// FzfFinder implements multi-target selection using the fzf library
type FzfFinder struct {
	options []Option
	prompt  string
	runner  FzfRunner
}

// NewFzf creates a new fzf-backed finder
func NewFzf(prompt string) *FzfFinder {
	return &FzfFinder{
		prompt: prompt,
		runner: &DefaultFzfRunner{},
	}
}

// NewFzfWithRunner creates a new fzf-backed finder with a custom runner (for testing)
func NewFzfWithRunner(prompt string, runner FzfRunner) *FzfFinder {
	return &FzfFinder{
		prompt: prompt,
		runner: runner,
	}
}

// SetOptions sets the available options for selection
func (f *FzfFinder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// SelectMulti starts the fuzzy selection process; tab marks multiple
// targets, enter confirms. Returns the chosen option values.
func (f *FzfFinder) SelectMulti() ([]string, error) {
	if len(f.options) == 0 {
		return nil, fmt.Errorf("no options available")
	}

	// fzf reads candidates from stdin, so stage them in a temp file.
	tmpFile, err := os.CreateTemp("", "tmplsync-targets-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Ignore cleanup errors
	}()

	for _, option := range f.options {
		displayText := option.Value
		if option.Description != "" {
			displayText = fmt.Sprintf("%s  │  %s", option.Value, option.Description)
		}
		if _, err := fmt.Fprintln(tmpFile, displayText); err != nil {
			_ = tmpFile.Close()
			return nil, fmt.Errorf("failed to write option to file: %w", err)
		}
	}

	// Close the file so fzf can read it
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	args := []string{
		"--prompt=" + f.prompt + " ",
		"--height=10",
		"--layout=default",
		"--multi",
		"--cycle",
		"--hscroll",
		"--clear",
		"--extended",
		"--algo=v2",
		"--tiebreak=length",
		"--no-mouse",
		"--border=none",
	}

	opts, err := fzf.ParseOptions(true, args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fzf options: %w", err)
	}

	// Redirect stdin to read from our temporary file
	originalStdin := os.Stdin
	defer func() { os.Stdin = originalStdin }()

	tmpFileForReading, err := os.Open(tmpFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary file for reading: %w", err)
	}
	defer func() {
		_ = tmpFileForReading.Close() // Ignore close errors
	}()

	os.Stdin = tmpFileForReading

	// Capture stdout to collect the selected lines
	originalStdout := os.Stdout
	defer func() { os.Stdout = originalStdout }()

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create pipe: %w", err)
	}
	defer func() {
		_ = r.Close() // Ignore close errors
	}()

	os.Stdout = w

	exitCode, err := f.runner.Run(opts)

	_ = w.Close() // Ignore close errors
	os.Stdout = originalStdout

	if err != nil {
		// Fallback to the numbered finder if fzf cannot run.
		return f.fallbackSelect()
	}

	if exitCode != fzf.ExitOk {
		return nil, fmt.Errorf("fzf selection cancelled or failed")
	}

	result, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read fzf result: %w", err)
	}

	values := parseSelection(string(result), f.options)
	if len(values) == 0 {
		return nil, fmt.Errorf("no selection made")
	}

	return values, nil
}

// parseSelection maps fzf output lines back to option values. Lines are
// shaped "value  │  description".
func parseSelection(output string, options []Option) []string {
	var values []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		value := strings.TrimSpace(strings.Split(line, "  │  ")[0])

		matched := false
		for _, option := range options {
			if option.Value == value {
				values = append(values, option.Value)
				matched = true
				break
			}
		}
		if !matched {
			values = append(values, value)
		}
	}
	return values
}

// fallbackSelect provides numbered selection for when fzf fails
func (f *FzfFinder) fallbackSelect() ([]string, error) {
	finder := New(f.prompt)
	for _, option := range f.options {
		finder.AddOption(option.Value, option.Description)
	}
	return finder.SelectMulti()
}
