package engine

type config struct {
	dataDir string
}

type Option func(*config)

// WithDataDir sets the root directory collection files live under.
func WithDataDir(dir string) Option {
	return func(cfg *config) {
		cfg.dataDir = dir
	}
}
