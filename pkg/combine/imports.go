package combine

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// CollectImports scans every file and returns the distinct imported names in
// ordinal sort order. Empty names are dropped.
func CollectImports(files []string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	seen := make(map[string]struct{})
	for _, file := range files {
		lines, err := readSourceLines(file)
		if err != nil {
			logger.Error("Failed to read file for imports", zap.String("filePath", file), zap.Error(err))
			return nil, fmt.Errorf("failed to collect imports: %w", err)
		}

		found := 0
		for _, line := range lines {
			name, ok := parseImport(line)
			if !ok || name == "" {
				continue
			}
			found++
			seen[name] = struct{}{}
		}
		logger.Debug("Scanned file for imports", zap.String("filePath", file), zap.Int("imports", found))
	}

	imports := make([]string, 0, len(seen))
	for name := range seen {
		imports = append(imports, name)
	}
	sort.Strings(imports)
	return imports, nil
}
