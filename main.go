package main

import (
	"log"
	"os"
	"strings"

	"sourcecombiner/cmd"
	"sourcecombiner/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Logger.Error("sourcecombiner execution failed", zap.Error(err))
		syncLogger(logging.Logger)
		// Logger is a no-op if setup failed, so report on stderr as well.
		log.Fatalf("sourcecombiner: %v", err)
	}
	syncLogger(logging.Logger)
}

// syncLogger flushes the logger when stderr can actually be synced.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
