package app

import (
	"os"
	"path/filepath"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/config"
)

// FindRoot returns the nearest directory (cwd or a parent) holding odds_config.yaml.
// The config file is optional, so the cwd is returned when none is found.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	// Support running from repo root, from apps/artifact_odds, or from cmd/*.
	dir := cwd
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(probe); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd, nil
}
