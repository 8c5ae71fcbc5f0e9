package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// PrepareFile resolves name against the working directory and creates its
// parent directories, returning the absolute path.
func PrepareFile(name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(cwd, name)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return path, nil
}
