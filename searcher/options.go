package searcher

// Option configures a search engine.
type Option func(*config)

type config struct {
	collector Collector
}

func newConfig(options ...Option) config {
	cfg := config{collector: NewDummyCollector()}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// WithCollector attaches a metrics collector to the engine. The engine
// resets the collector at the start of every SelectAction call; read the
// snapshot with Collector.Complete after the call returns.
func WithCollector(collector Collector) Option {
	return func(cfg *config) {
		if collector != nil {
			cfg.collector = collector
		}
	}
}
