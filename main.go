package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/filetug/fileman/pkg/config"
	"github.com/filetug/fileman/pkg/fileman"
	"github.com/filetug/fileman/pkg/logging"
	"github.com/filetug/fileman/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit

func main() {
	if err := execute(os.Args[1:]); err != nil {
		osExit(1)
	}
}

func execute(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

type rootFlags struct {
	configPath string
	showHidden bool
	noMouse    bool
	logFile    string
	logLevel   string

	cpuProfile string
	memProfile string
	pprofAddr  string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "fileman [dir]",
		Short: "Browse a directory in the terminal",
		Long: `fileman lists a directory with the size and modification time of each entry.

Click or press Enter on a directory to open it, double click or press Enter
on a file to open it with the default application. Backspace goes up.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd.Flags(), f, args)
		},
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config `file` (default is config.yaml in the user config dir)")

	flags := cmd.Flags()
	flags.BoolVar(&f.showHidden, "show-hidden", true, "list entries whose name starts with a dot")
	flags.BoolVar(&f.noMouse, "no-mouse", false, "disable mouse support")
	flags.StringVar(&f.logFile, "log-file", "", "append logs to `file`")
	flags.StringVar(&f.logLevel, "log-level", "", "log `level`: trace, debug, info, warn or error")

	flags.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&f.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	for _, name := range []string{"cpuprofile", "memprofile", "pprof"} {
		_ = flags.MarkHidden(name)
	}

	cmd.AddCommand(newConfigCmd(&f.configPath))
	return cmd
}

// loadConfig layers command line flags over the config file.
func loadConfig(flags *pflag.FlagSet, f rootFlags, args []string) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.Changed("show-hidden") {
		cfg.ShowHidden = f.showHidden
	}
	if f.noMouse {
		cfg.Mouse = false
	}
	if flags.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if len(args) > 0 {
		cfg.StartDir = args[0]
	}
	return cfg, cfg.Validate()
}

func runBrowser(flags *pflag.FlagSet, f rootFlags, args []string) (err error) {
	cfg, err := loadConfig(flags, f, args)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}()

	startDir, err := cfg.ResolveStartDir()
	if err != nil {
		return fmt.Errorf("failed to resolve start dir: %w", err)
	}

	if f.pprofAddr != "" {
		go servePprof(f.pprofAddr, log)
	}

	stopCPUProfiling := func() {}
	if f.cpuProfile != "" {
		stopCPUProfiling = profiling.DoCPUProfiling(f.cpuProfile, log)
	}
	if f.memProfile != "" {
		defer profiling.DoMemProfiling(f.memProfile, log)()
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from panic: %v", r)
			log.WithError(err).Error("fileman crashed")
		}
		stopCPUProfiling()
	}()

	app := newApp()
	setupApp(app, fileman.Options{
		StartDir:   startDir,
		ShowHidden: cfg.ShowHidden,
		Mouse:      cfg.Mouse,
		Log:        log,
	})
	log.WithField("dir", startDir).Info("fileman started")
	return run(app)
}

func servePprof(addr string, log logrus.FieldLogger) {
	log.WithField("addr", addr).Info("starting pprof server")
	if err := httpListenAndServe(addr, nil); err != nil {
		log.WithError(err).Error("pprof server error")
	}
}

var setupApp = fileman.SetupApp

var newApp = func() fileman.App {
	return fileman.NewApp(tview.NewApplication())
}

var run = func(app fileman.App) error {
	return app.Run()
}
