package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tmplsync/pkg/mirror"
	"tmplsync/pkg/repo"
)

var statusCmd = &cobra.Command{
	Use:   "status [target-dir ...]",
	Short: "Show template drift for target repositories",
	Long: `Report the sync state of each target repository without writing
anything: whether the target exists, which remote it points at, and how
many template files would be added, updated, or removed by a sync.

Targets come from the positional arguments; without arguments the
configured target list is used.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	statusCmd.Flags().StringVar(&sourceFlag, "source", "", "Template directory to compare against")
}

func runStatus(_ *cobra.Command, args []string) error {
	appConfig, err := loadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targets := args
	if len(targets) == 0 {
		targets = appConfig.Targets
	}
	if len(targets) == 0 {
		return fmt.Errorf("no target directories supplied\n\nUsage: tmplsync status <target-dir> [target-dir ...]")
	}

	sourceDir, err := resolveSource(appConfig)
	if err != nil {
		return err
	}

	result, err := mirror.Run(mirror.RunOptions{
		SourceDir: sourceDir,
		GithubDir: appConfig.GithubDir,
		Exclude:   excludeList(appConfig),
		DryRun:    true,
	}, targets)
	if err != nil {
		return err
	}

	fmt.Printf("📋 Template status against %s\n\n", sourceDir)

	for _, targetResult := range result.Results {
		info := repo.Inspect(targetResult.Target)

		if targetResult.Skipped {
			fmt.Printf("❌ %s — directory not found\n", targetResult.Target)
			continue
		}

		label := targetResult.Target
		if info.OriginURL != "" {
			label = fmt.Sprintf("%s (%s)", targetResult.Target, info.OriginURL)
		}

		if targetResult.Plan.IsEmpty() {
			fmt.Printf("✅ %s — up to date\n", label)
			continue
		}

		creates, updates, deletes := targetResult.Plan.Summary()
		fmt.Printf("🔄 %s — %d to add, %d to update, %d to remove\n",
			label, creates, updates, deletes)
	}

	return nil
}
