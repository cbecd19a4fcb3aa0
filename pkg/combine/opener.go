package combine

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener hands a written file to something that can display it.
type Opener interface {
	Open(path string) error
}

// NopOpener ignores open requests. Use it for headless runs.
type NopOpener struct{}

// Open does nothing.
func (NopOpener) Open(string) error { return nil }

// SystemOpener opens files with the host's default application.
// The handler is started and not waited for.
type SystemOpener struct{}

// Open launches the platform handler for path. It returns ErrOpenerUnavailable
// when the handler program cannot be found.
func (SystemOpener) Open(path string) error {
	name, args := openCommand(runtime.GOOS, path)
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOpenerUnavailable, name, err)
	}
	cmd := exec.Command(bin, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return cmd.Process.Release()
}

// openCommand returns the program and arguments that open path on goos.
func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
