package opener

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"
)

var execCommandContext = exec.CommandContext

// Command returns the program and arguments that open path
// with the default handler of the given OS.
func Command(goos, path string) (name string, args []string) {
	switch goos {
	case "windows":
		return "notepad", []string{path}
	case "darwin":
		return "open", []string{"-t", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Opener launches files with the OS default handler.
type Opener struct {
	GOOS string
	Log  logrus.FieldLogger
}

// New returns an opener for the current OS.
func New(log logrus.FieldLogger) Opener {
	return Opener{GOOS: runtime.GOOS, Log: log}
}

// Open starts the handler and returns without waiting for it to exit.
// The process is reaped in the background, a non-zero exit is only logged.
func (o Opener) Open(ctx context.Context, path string) error {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	log := o.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	name, args := Command(goos, path)
	cmd := execCommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", path, name, err)
	}
	log.WithField("path", path).WithField("cmd", name).Info("opening file")
	go func() {
		if err := cmd.Wait(); err != nil {
			log.WithError(err).WithField("path", path).Error("file opener exited with error")
		}
	}()
	return nil
}
