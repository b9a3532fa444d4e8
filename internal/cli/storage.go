package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/llehouerou/carfilter/internal/config"
	"github.com/llehouerou/carfilter/internal/state"
)

// openStorage opens the backend named by the configuration.
var openStorage = func(cfg *config.Config) (state.Interface, error) {
	switch cfg.Storage {
	case config.StoragePebble:
		return state.OpenPebble(state.PebbleDir(cfg.DataDir))
	case config.StorageSQLite, "":
		path, err := state.DBPath(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return state.Open(path)
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorage, cfg.Storage)
}

// openLogger writes text logs to the configured file; the TUI owns stdout.
func openLogger(cfg *config.Config) (*slog.Logger, *os.File, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	return logger, f, nil
}
