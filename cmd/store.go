package cmd

import (
	"fmt"

	"github.com/marcus/kanafont/internal/config"
	"github.com/marcus/kanafont/internal/prefs"
)

// openedStore is a preferences store plus what the caller needs to watch
// and release it.
type openedStore struct {
	Store     *prefs.Store
	WatchPath string // empty when the backend has no file to watch
	close     func() error
}

func (o *openedStore) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

func openStore(backend, dir string) (*openedStore, error) {
	var (
		persister prefs.Persister
		out       = &openedStore{}
	)

	switch backend {
	case config.BackendJSON, "":
		fp := prefs.NewFilePersister(dir)
		persister = fp
		out.WatchPath = fp.Path()
	case config.BackendSQLite:
		sp, err := prefs.OpenSQLite(dir)
		if err != nil {
			return nil, err
		}
		persister = sp
		out.close = sp.Close
	case config.BackendMemory:
		persister = prefs.NewMemoryPersister()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}

	store, err := prefs.Open(persister)
	if err != nil {
		out.Close()
		return nil, err
	}
	out.Store = store
	return out, nil
}
