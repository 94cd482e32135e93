package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/listkit/internal/config"
	"github.com/dshills/listkit/internal/logging"
	"github.com/dshills/listkit/internal/term/tcellview"
	"github.com/dshills/listkit/internal/term/teaview"
	"github.com/dshills/listkit/internal/workbench"
)

// Front-end names accepted by demo --frontend.
const (
	FrontendTcell     = "tcell"
	FrontendBubbletea = "bubbletea"
)

func newDemoCmd(app *App) *cobra.Command {
	var frontend string
	var watch bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show the configured widgets in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frontend != FrontendTcell && frontend != FrontendBubbletea {
				return fmt.Errorf("--frontend: unknown front-end %q (want %s or %s)", frontend, FrontendTcell, FrontendBubbletea)
			}
			// The terminal belongs to the front-end; only a log file gets output.
			if app.LogFile == "" {
				app.log = logging.Null()
			}
			log := app.logger()

			wb, err := app.load()
			if err != nil {
				return err
			}
			wb.Validate()
			reload := func() (*workbench.Workbench, error) {
				cfg, err := config.Load(app.ConfigPath)
				if err != nil {
					return nil, err
				}
				return workbench.New(cfg, log)
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if frontend == FrontendBubbletea {
				return runBubbletea(ctx, app, wb, reload, watch, log)
			}
			return runTcell(ctx, app, wb, reload, watch, log)
		},
	}

	cmd.Flags().StringVar(&frontend, "frontend", FrontendTcell, "Terminal front-end (tcell|bubbletea)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload when the configuration file changes")
	return cmd
}

func watchConfig(ctx context.Context, app *App, log *logging.Logger, onChange func()) error {
	return config.Watch(ctx, app.ConfigPath, config.DefaultDebounce, onChange, func(err error) {
		log.Warn("watch: %v", err)
	})
}

func runTcell(ctx context.Context, app *App, wb *workbench.Workbench, reload tcellview.Reloader, watch bool, log *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := tcellview.New(screen, wb, log)
	v.SetReloader(reload)
	if watch {
		if err := watchConfig(ctx, app, log, v.Reload); err != nil {
			return err
		}
	}
	return v.Run(ctx)
}

func runBubbletea(ctx context.Context, app *App, wb *workbench.Workbench, reload teaview.Reloader, watch bool, log *logging.Logger) error {
	m := teaview.New(wb, log).WithReloader(reload)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if watch {
		if err := watchConfig(ctx, app, log, func() { p.Send(teaview.ReloadMsg{}) }); err != nil {
			return err
		}
	}
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running bubbletea: %w", err)
	}
	return nil
}
