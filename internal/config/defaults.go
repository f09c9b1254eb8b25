package config

const (
	defaultLibraryPath = "~/.local/share/smartmix/library.db"

	// Timbre and tempo carry most of the decision; pitch-class refines it.
	defaultMFCCWeight   = 0.4
	defaultChromaWeight = 0.2
	defaultTempoWeight  = 0.4

	// Guards the tempo-proximity division when every track shares one tempo.
	defaultTempoEpsilon = 1e-8

	defaultResolverMinScore       = 0.3
	defaultResolverMaxSuggestions = 5

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryPath: defaultLibraryPath,
		},
		Similarity: Similarity{
			MFCCWeight:   defaultMFCCWeight,
			ChromaWeight: defaultChromaWeight,
			TempoWeight:  defaultTempoWeight,
			TempoEpsilon: defaultTempoEpsilon,
		},
		Resolver: Resolver{
			MinScore:       defaultResolverMinScore,
			MaxSuggestions: defaultResolverMaxSuggestions,
		},
		Engine: Engine{
			Parallelism: 0, // 0 selects GOMAXPROCS
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
