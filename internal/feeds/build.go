package feeds

import (
	"github.com/AetherPulse/PulseGuard/internal/config"
)

// FromConfig assembles the enabled sources.
func FromConfig(cfg config.SourcesConfig) []Source {
	var sources []Source
	if cfg.WHOEnabled {
		sources = append(sources, NewWHOSource(cfg.WHOURL, cfg.FetchTimeout))
	}
	if cfg.CDCEnabled {
		sources = append(sources, NewCDCSource(cfg.CDCURL, cfg.FetchTimeout))
	}
	if cfg.LocalHealthEnabled {
		sources = append(sources, NewLocalHealthSource(cfg.LocalHealthURL, cfg.FetchTimeout))
	}
	return sources
}
