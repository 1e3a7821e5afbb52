package config

import (
	"os"
	"path/filepath"
	"strings"
)

func findInPath(configDir string) ([]string, error) {
	var matches []string

	if _, err := os.Stat(configDir); err != nil {
		return nil, err
	}

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if strings.HasSuffix(info.Name(), "hcl") {
			matches = append(matches, path)
		}
		return nil
	})

	return matches, err
}
