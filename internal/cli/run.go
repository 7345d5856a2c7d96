package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/app"
	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/logger"
	"github.com/qiushiyan/hop/internal/output"
	"github.com/qiushiyan/hop/internal/store"
	"github.com/qiushiyan/hop/internal/watcher"
)

var runLog = logger.Named("run")

var (
	runDebounce     time.Duration
	runKeepLastGood bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Bind global hotkeys and watch the config",
	Long: `Run the hotkey host in the foreground.

The global hotkey toggles the panel, which is printed to the terminal.
Link shortcuts open their URL directly. Edits to the config file are picked
up automatically and hotkeys are rebound.

By default a config file that fails to parse unbinds the panel hotkey until
it is fixed. Link hotkeys stay bound to the last config that loaded.
--keep-last-good keeps that config in use, including the panel hotkey.

Examples:
  hop run
  hop run --debounce 200ms --keep-last-good
  hop run -v`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().DurationVar(&runDebounce, "debounce", watcher.DefaultDebounce, "Coalesce file events within this window")
	runCmd.Flags().BoolVar(&runKeepLastGood, "keep-last-good", false, "Keep the last valid config when the file fails to parse")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	op, err := newOpener()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := store.New(path, store.WithRetainOnError(runKeepLastGood))
	a := app.New(s, op, deps.BackendFactory.Create(), app.WithDebounce(runDebounce))
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Close()

	if err := a.Err(); err != nil {
		output.Warn("%v", err)
	}
	output.Success("Watching %s (%d hotkeys bound)", config.CollapseHome(path), len(a.Bindings()))
	if !a.Watching() {
		output.Warn("Live reload is disabled, restart hop after editing the config")
	}

	sub := s.Subscribe(func(st store.State) {
		if st.Err != nil {
			runLog.Warn("config not applied: %v", st.Err)
			return
		}
		runLog.Info("config reloaded")
	})
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			output.Info("Shutting down")
			return nil
		case ev, ok := <-a.Events():
			if !ok {
				return nil
			}
			renderPanel(a, ev)
		}
	}
}

// renderPanel prints the panel contents when it is shown.
func renderPanel(a *app.App, ev app.PanelState) {
	if !ev.Visible {
		runLog.Debug("panel hidden")
		return
	}

	cfg := a.Config()
	if cfg == nil {
		output.Error("Config unavailable: %v", a.Err())
		return
	}
	output.Header("hop")
	items := linkItems(cfg, a.FilteredLinks(ev.Query))
	if len(items) == 0 {
		output.Info("No links")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Category, item.Name, item.URL, item.Shortcut})
	}
	output.Table([]string{"CATEGORY", "NAME", "URL", "SHORTCUT"}, rows)
}
