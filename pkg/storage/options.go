package storage

type Option func(*Store)

// WithDataDir sets the root directory collection files live under.
func WithDataDir(dir string) Option {
	return func(store *Store) {
		store.dataDir = dir
	}
}
