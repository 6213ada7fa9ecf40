package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tmplsync",
	Short: "A CLI tool for mirroring shared GitHub templates into sibling repositories",
	Long: `Tmplsync keeps a canonical .github template directory in sync across an
organization's repository checkouts. It mirrors issue and pull request
templates into each target repository, removes files that no longer exist
in the template source, and never touches each repository's own workflows.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statusCmd)
}
