package combine

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Result summarises a completed run.
type Result struct {
	Output  string // Path of the written file.
	Files   int    // Number of source files combined.
	Imports int    // Number of distinct imports hoisted to the top.
	Opened  bool   // Whether the output was handed to the opener.
}

// Run combines every source file under opts.SourceDir into opts.Output.
// It discovers files, collects their imports, renders the bodies, writes the
// result and optionally opens it. Any failure aborts the run.
func Run(opts Options, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SourceDir == "" || opts.Output == "" {
		return Result{}, fmt.Errorf("%w: source directory and output path are required", ErrUsage)
	}
	opts = opts.withDefaults()

	startTime := time.Now()
	logger.Info("Starting combination process",
		zap.String("directory", opts.SourceDir),
		zap.String("output", opts.Output))

	files, err := DiscoverFiles(opts.SourceDir, opts.Extension, opts.ExcludeMarker, logger)
	if err != nil {
		logger.Error("Failed to discover files", zap.Error(err))
		return Result{}, fmt.Errorf("failed to discover files: %w", err)
	}
	logger.Info("Discovered source files", zap.Int("files", len(files)))

	imports, err := CollectImports(files, logger)
	if err != nil {
		return Result{}, err
	}

	bodies, err := RenderBodies(files, logger)
	if err != nil {
		return Result{}, err
	}

	combined := BuildOutput(len(files), opts.Now(), imports, bodies)
	if err := WriteOutputFile(opts.Output, []byte(combined), logger); err != nil {
		logger.Error("Failed to write combined file", zap.String("combinedFile", opts.Output), zap.Error(err))
		return Result{}, fmt.Errorf("failed to write combined file: %w", err)
	}

	res := Result{Output: opts.Output, Files: len(files), Imports: len(imports)}

	if opts.OpenAfterWrite {
		switch err := opts.Opener.Open(opts.Output); {
		case errors.Is(err, ErrOpenerUnavailable):
			logger.Warn("Cannot open output file, skipping", zap.String("combinedFile", opts.Output), zap.Error(err))
		case err != nil:
			logger.Error("Failed to open output file", zap.String("combinedFile", opts.Output), zap.Error(err))
			return res, fmt.Errorf("failed to open combined file: %w", err)
		default:
			res.Opened = true
		}
	}

	logger.Info("Combination process completed",
		zap.String("outputFile", res.Output),
		zap.Int("totalFiles", res.Files),
		zap.Int("imports", res.Imports),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}
