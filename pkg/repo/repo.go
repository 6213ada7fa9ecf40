// Package repo inspects target repository checkouts without modifying
// them. It reads the checkout's git configuration to identify which
// remote repository a target directory belongs to.
package repo

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Info describes a target repository checkout
type Info struct {
	Path      string
	Exists    bool
	HasGitDir bool
	OriginURL string
}

// Inspect gathers information about a checkout. Absent directories and
// unparsable git configurations degrade the report instead of failing:
// a target without a .git directory is still a valid sync target.
func Inspect(path string) Info {
	info := Info{Path: path}

	stat, err := os.Stat(path)
	if err != nil || !stat.IsDir() {
		return info
	}
	info.Exists = true

	gitConfig := filepath.Join(path, ".git", "config")
	if _, err := os.Stat(gitConfig); err != nil {
		return info
	}
	info.HasGitDir = true

	cfg, err := ini.Load(gitConfig)
	if err != nil {
		return info
	}

	section, err := cfg.GetSection(`remote "origin"`)
	if err != nil {
		return info
	}
	info.OriginURL = section.Key("url").String()

	return info
}
