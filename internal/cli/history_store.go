package cli

import (
	"context"
	"errors"

	"github.com/rshade/unitconv/internal/config"
	"github.com/rshade/unitconv/internal/conversion"
	"github.com/rshade/unitconv/internal/history"
	"github.com/rshade/unitconv/internal/logging"
)

// errHistoryDisabled is returned when history is turned off.
var errHistoryDisabled = errors.New("history is disabled (--no-history or history.disabled)")

// historyStore returns the configured history store without reading it.
func historyStore() (*history.Store, error) {
	cfg := config.GetGlobalConfig()
	if cfg.History.Disabled {
		return nil, errHistoryDisabled
	}
	return history.NewStore(cfg.History.File, history.WithMaxEntries(cfg.History.MaxEntries))
}

// openHistory loads the history store configured for this invocation.
func openHistory() (*history.Store, error) {
	store, err := historyStore()
	if err != nil {
		return nil, err
	}
	if loadErr := store.Load(); loadErr != nil {
		return nil, loadErr
	}
	return store, nil
}

// recordConversion appends r to history. Failures are logged and never fail
// the command: the conversion itself already succeeded.
func recordConversion(ctx context.Context, r conversion.Result) {
	log := logging.FromContext(ctx)

	if !r.Recordable() {
		log.Debug().Str("category", r.Category).Msg("result not recorded: zero output for non-zero input")
		return
	}

	store, err := historyStore()
	if errors.Is(err, errHistoryDisabled) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable, conversion not recorded")
		return
	}

	if _, recErr := store.Record(r); recErr != nil {
		log.Warn().Err(recErr).Str("file", store.FilePath()).Msg("recording conversion failed")
	}
}
