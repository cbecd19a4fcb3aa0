// File: pkg/combine/traversal.go
package combine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DiscoverFiles walks root recursively and returns every file with the given
// extension, in walk order. Files whose base name contains excludeMarker are
// left out. The walk stops at the first error.
func DiscoverFiles(root, extension, excludeMarker string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file discovery",
		zap.String("root", root),
		zap.String("extension", extension),
		zap.String("excludeMarker", excludeMarker))

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: source directory %s", ErrNotFound, root)
		}
		return nil, classifyPathError(err, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during discovery", zap.String("path", path), zap.Error(err))
			return classifyPathError(err, path)
		}
		if d.IsDir() || filepath.Ext(path) != extension {
			return nil
		}
		if excludeMarker != "" && strings.Contains(d.Name(), excludeMarker) {
			logger.Debug("Skipping excluded file", zap.String("filePath", path))
			return nil
		}

		files = append(files, path)
		logger.Debug("Discovered source file", zap.String("filePath", path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Completed file discovery", zap.Int("files", len(files)))
	return files, nil
}

// classifyPathError maps a file system error onto the combiner's error classes.
// Anything that is not a missing path, permission failures included, is an
// access error.
func classifyPathError(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrAccess, path, err)
}
