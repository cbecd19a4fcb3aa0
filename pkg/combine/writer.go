// File: pkg/combine/writer.go
package combine

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const outputFileMode os.FileMode = 0o644

// WriteOutputFile replaces the file at outputPath with data. The content is
// staged in a temporary file next to the target and renamed into place only
// after it is fully written and synced; on any failure the temporary file is
// removed and the target is left untouched.
func WriteOutputFile(outputPath string, data []byte, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	dir, base := filepath.Split(outputPath)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		logger.Error("Failed to create temporary output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrWrite, outputPath, err)
	}
	tmpPath := tmp.Name()
	logger.Debug("Staging output", zap.String("tempFile", tmpPath))

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			err = multierr.Append(err, tmp.Close())
		}
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierr.Append(err, rmErr)
		}
	}()

	writer := bufio.NewWriter(tmp)
	if _, err = writer.Write(data); err != nil {
		logger.Error("Failed to write combined content", zap.String("file", tmpPath), zap.Error(err))
		return fmt.Errorf("%w: failed to write content: %w", ErrWrite, err)
	}
	if err = writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", tmpPath), zap.Error(err))
		return fmt.Errorf("%w: failed to flush output: %w", ErrWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync output: %w", ErrWrite, err)
	}
	if err = tmp.Chmod(outputFileMode); err != nil {
		return fmt.Errorf("%w: failed to set output mode: %w", ErrWrite, err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", tmpPath), zap.Error(err))
		return fmt.Errorf("%w: failed to close output: %w", ErrWrite, err)
	}
	if err = os.Rename(tmpPath, outputPath); err != nil {
		logger.Error("Failed to move output into place", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrWrite, outputPath, err)
	}

	logger.Debug("Successfully wrote file", zap.String("path", outputPath), zap.Int("bytes", len(data)))
	return nil
}
