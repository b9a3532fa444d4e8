// Package cli is the carfilter command line. The root command runs the
// filter bar TUI; the subcommands read and change the saved selection
// through the same store.
package cli

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/carfilter/internal/app"
	"github.com/llehouerou/carfilter/internal/config"
	"github.com/llehouerou/carfilter/internal/errmsg"
	"github.com/llehouerou/carfilter/internal/filterstore"
	"github.com/llehouerou/carfilter/internal/scrolllock"
	"github.com/llehouerou/carfilter/internal/state"
)

func Execute() error {
	return NewRoot().Execute()
}

var loadConfig = config.Load

var runTUI = func(kv state.Interface, logger *slog.Logger) error {
	m := app.New(kv, scrolllock.Global, filterstore.WithLogger(logger))
	// the controller is shared by every copy of the model
	defer m.Popups.Dispose()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func NewRoot() *cobra.Command {
	r := &runner{}
	root := &cobra.Command{
		Use:          "carfilter",
		Short:        "Pick rental-car filters in the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStorage(cmd) {
				return nil
			}
			return r.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			r.close()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer r.close()
			return runTUI(r.kv, r.logger)
		},
	}
	root.AddCommand(
		showCmd(r),
		resetCmd(r),
		toggleTagCmd(r),
		setPriceCmd(r),
		clearCmd(r),
		setCmd(r),
	)
	return root
}

// needsStorage is false for cobra's help and shell completion commands.
func needsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// runner holds what a command needs once configuration is loaded.
type runner struct {
	cfg    *config.Config
	kv     state.Interface
	logger *slog.Logger
	logOut io.Closer
}

func (r *runner) setup() error {
	cfg, err := loadConfig()
	if err != nil {
		return failed(errmsg.OpConfigLoad, err)
	}
	r.cfg = cfg

	logger, out, err := openLogger(cfg)
	if err != nil {
		return failed(errmsg.OpLogOpen, err)
	}
	r.logger, r.logOut = logger, out
	slog.SetDefault(logger)

	kv, err := openStorage(cfg)
	if err != nil {
		r.close()
		return failed(errmsg.OpStorageOpen, err)
	}
	r.kv = kv
	logger.Debug("storage opened", "backend", cfg.Storage)
	return nil
}

func (r *runner) close() {
	if r.kv != nil {
		if err := r.kv.Close(); err != nil {
			r.logger.Error(errmsg.Format(errmsg.OpStorageClose, err))
		}
		r.kv = nil
	}
	if r.logOut != nil {
		_ = r.logOut.Close()
		r.logOut = nil
	}
}

// store loads the saved selection. Commands run without a notifier.
func (r *runner) store() (*filterstore.Store, *filterstore.StorageAdapter) {
	adapter := filterstore.NewStorageAdapter(r.kv)
	return filterstore.New(adapter, nil, filterstore.WithLogger(r.logger)), adapter
}
