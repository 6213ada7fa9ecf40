package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tmplsync/pkg/config"
	"tmplsync/pkg/fuzzy"
	"tmplsync/pkg/mirror"
	"tmplsync/pkg/repo"
)

var (
	configFile  string
	sourceFlag  string
	dryRun      bool
	interactive bool
)

var syncCmd = &cobra.Command{
	Use:   "sync [target-dir ...]",
	Short: "Mirror the template directory into target repositories",
	Long: `Mirror the canonical .github template directory into one or more target
repository checkouts.

For each target, tmplsync ensures a .github subdirectory exists and makes
its contents match the template source exactly: new and changed files are
copied, files that no longer exist in the source are removed. Excluded
subpaths (workflows by default) are never copied and never deleted, so
each repository keeps its own CI definitions.

Targets come from the positional arguments; without arguments the
configured target list is used. A target directory that does not exist
is skipped with a warning and does not fail the run.

Examples:
  # Sync two sibling checkouts
  tmplsync sync ../service-one ../service-two

  # Preview changes without writing anything
  tmplsync sync ../service-one --dry-run

  # Pick targets from the configured list
  tmplsync sync --interactive

  # Sync every configured target
  tmplsync sync`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	syncCmd.Flags().StringVar(&sourceFlag, "source", "", "Template directory to mirror (default: .github next to the binary's parent directory)")
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without applying them")
	syncCmd.Flags().BoolVar(&interactive, "interactive", false, "Pick targets from the configured target list")
}

func runSync(_ *cobra.Command, args []string) error {
	appConfig, err := loadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targets, err := resolveTargets(appConfig, args)
	if err != nil {
		return err
	}

	sourceDir, err := resolveSource(appConfig)
	if err != nil {
		return err
	}

	fmt.Printf("🔄 Syncing templates from %s\n", sourceDir)

	result, err := mirror.Run(mirror.RunOptions{
		SourceDir: sourceDir,
		GithubDir: appConfig.GithubDir,
		Exclude:   excludeList(appConfig),
		DryRun:    dryRun,
	}, targets)
	if err != nil {
		return err
	}

	for _, targetResult := range result.Results {
		if targetResult.Skipped {
			fmt.Fprintf(os.Stderr, "⚠️  Warning: %s, skipping\n", targetResult.Err.Message)
			continue
		}

		if dryRun {
			printPlan(targetResult.Target, targetResult.Plan)
			continue
		}

		creates, updates, deletes := targetResult.Plan.Summary()
		if targetResult.Plan.IsEmpty() {
			fmt.Printf("✅ %s already up to date\n", targetResult.Target)
		} else {
			fmt.Printf("✅ Synced %s (%d added, %d updated, %d removed)\n",
				targetResult.Target, creates, updates, deletes)
		}
	}

	if dryRun {
		fmt.Println("🔍 Dry-run complete, nothing was written")
	} else {
		fmt.Println("🎉 Template sync complete")
	}

	return nil
}

// printPlan shows planned changes for one target in a human-readable form
func printPlan(target string, plan *mirror.Plan) {
	if plan.IsEmpty() {
		fmt.Printf("✅ %s already up to date\n", target)
		return
	}

	fmt.Printf("📋 Planned changes for %s:\n", target)
	for _, change := range plan.Changes {
		switch change.Type {
		case mirror.ChangeTypeCreate:
			fmt.Printf("  + %s\n", change.Path)
		case mirror.ChangeTypeUpdate:
			fmt.Printf("  ~ %s\n", change.Path)
		case mirror.ChangeTypeDelete:
			fmt.Printf("  - %s\n", change.Path)
		}
	}
}

func loadAppConfig() (*config.Config, error) {
	var appConfig *config.Config
	var err error

	if configFile != "" {
		appConfig, err = config.LoadConfigFromPath(configFile)
	} else {
		appConfig, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return appConfig, nil
}

// resolveTargets determines the target list: positional arguments win,
// then interactive selection, then the configured target list
func resolveTargets(appConfig *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if interactive {
		return selectTargets(appConfig)
	}

	if len(appConfig.Targets) > 0 {
		return appConfig.Targets, nil
	}

	return nil, fmt.Errorf("no target directories supplied\n\nUsage: tmplsync sync <target-dir> [target-dir ...]")
}

// selectTargets picks targets from the configured list with fzf
func selectTargets(appConfig *config.Config) ([]string, error) {
	if len(appConfig.Targets) == 0 {
		return nil, fmt.Errorf("no targets configured: add a targets list to the config file or pass target directories as arguments")
	}
	if !fuzzy.IsTerminal() {
		return nil, fmt.Errorf("interactive selection requires a terminal")
	}

	finder := fuzzy.NewFzf("Targets>")
	options := make([]fuzzy.Option, 0, len(appConfig.Targets))
	for _, target := range appConfig.Targets {
		options = append(options, fuzzy.Option{
			Value:       target,
			Description: repo.Inspect(target).OriginURL,
		})
	}
	if err := finder.SetOptions(options); err != nil {
		return nil, err
	}

	return finder.SelectMulti()
}

// resolveSource determines the template directory: the --source flag
// wins, then the configuration (which honors TMPLSYNC_SOURCE), then the
// default location next to the binary's parent directory
func resolveSource(appConfig *config.Config) (string, error) {
	if sourceFlag != "" {
		return sourceFlag, nil
	}
	if appConfig.Source != "" {
		return appConfig.Source, nil
	}

	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(executable), "..", mirror.DefaultGithubDir), nil
}

// excludeList unions the configured exclusions with the defaults so a
// custom list can never re-arm deletion of workflow files
func excludeList(appConfig *config.Config) []string {
	if len(appConfig.Exclude) == 0 {
		return nil // mirror.Run falls back to its defaults
	}

	merged := append([]string{}, mirror.DefaultExcludes...)
	seen := make(map[string]bool, len(merged))
	for _, exclude := range merged {
		seen[exclude] = true
	}
	for _, exclude := range appConfig.Exclude {
		if !seen[exclude] {
			seen[exclude] = true
			merged = append(merged, exclude)
		}
	}
	return merged
}
