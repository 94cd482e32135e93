// Package cli implements the listkit command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/logging"
	"github.com/dshills/listkit/internal/workbench"
)

// ErrViolations is returned by check when any widget reports a warning.
var ErrViolations = errors.New("validation warnings")

// App holds the persistent flags shared by every command.
type App struct {
	ConfigPath string
	LogLevel   string
	LogFile    string

	log     *logging.Logger
	logFile *os.File
}

// NewRootCmd builds the listkit command tree.
func NewRootCmd(version string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "listkit",
		Short:         "Keyboard and pointer behavior for list widgets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Try the widgets interactively
  listkit demo -c widgets.toml

  # Drive them from a Lua scenario
  listkit run -c widgets.toml scenario.lua

  # Print the state after a few keys
  listkit dump -c widgets.toml --press Down --press Space --query widgets.fruits.value
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.openLog(cmd.ErrOrStderr())
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.closeLog()
	}

	cmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", envOr("LISTKIT_CONFIG", "widgets.toml"), "Path to the widget configuration")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("LISTKIT_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file instead of stderr")

	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newRunCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newDumpCmd(app))
	return cmd
}

func (app *App) openLog(stderr io.Writer) error {
	level, err := logging.ParseLevel(app.LogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Output = stderr
	if app.LogFile != "" {
		f, err := os.OpenFile(app.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		app.logFile = f
		cfg.Output = f
	}
	app.log = logging.New(cfg)
	return nil
}

func (app *App) closeLog() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// logger returns the command logger; before PersistentPreRunE it is a
// null logger.
func (app *App) logger() *logging.Logger {
	if app.log == nil {
		return logging.Null()
	}
	return app.log
}

// load reads the configuration and builds its workbench.
func (app *App) load() (*workbench.Workbench, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return nil, err
	}
	wb, err := workbench.New(cfg, app.logger())
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", app.ConfigPath, err)
	}
	return wb, nil
}

func envOr(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}
