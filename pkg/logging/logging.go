package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filetug/fileman/pkg/config"
	"github.com/filetug/fileman/pkg/fsutils"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	stderr io.Writer = os.Stderr

	stderrIsTerminal = func() bool {
		fd := os.Stderr.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// New builds the application logger.
//
// The UI draws on the terminal, so logs only go to stderr when it is redirected.
// With a log file configured they are appended to it instead, otherwise they are dropped.
// The returned close func releases the log file, if any.
func New(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	closeFunc := func() error { return nil }

	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.Level); err != nil {
			return nil, closeFunc, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	logger.SetLevel(level)

	switch {
	case cfg.File != "":
		file, err := openLogFile(fsutils.ExpandHome(cfg.File))
		if err != nil {
			return nil, closeFunc, err
		}
		logger.SetOutput(file)
		closeFunc = file.Close
	case !stderrIsTerminal():
		logger.SetOutput(stderr)
	default:
		logger.SetOutput(io.Discard)
	}

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}
	return logger, closeFunc, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
