package combine

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// separatorLine marks where the body of an original file begins.
func separatorLine(path string) string {
	return "//*** SourceCombiner -> original file " + filepath.Base(path) + " ***"
}

// RenderFile returns the separator for path followed by every line of the
// file that is not blank, not an import declaration and not a module-level
// attribute. Kept lines are returned exactly as read.
func RenderFile(path string) ([]string, error) {
	lines, err := readSourceLines(path)
	if err != nil {
		return nil, err
	}

	body := make([]string, 0, len(lines)+1)
	body = append(body, separatorLine(path))
	for _, line := range lines {
		if keepBodyLine(line) {
			body = append(body, line)
		}
	}
	return body, nil
}

// RenderBodies renders each file in order.
func RenderBodies(files []string, logger *zap.Logger) ([][]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bodies := make([][]string, 0, len(files))
	for _, file := range files {
		body, err := RenderFile(file)
		if err != nil {
			logger.Error("Failed to render file", zap.String("filePath", file), zap.Error(err))
			return nil, fmt.Errorf("failed to render body: %w", err)
		}
		logger.Debug("Rendered file", zap.String("filePath", file), zap.Int("lines", len(body)-1))
		bodies = append(bodies, body)
	}
	return bodies, nil
}
