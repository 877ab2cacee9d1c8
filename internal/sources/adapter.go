// internal/sources/adapter.go
package sources

import (
	"context"
	"fmt"
	"sort"

	"market-intel/internal/common/config"
	"market-intel/internal/common/logger"
	"market-intel/internal/models"
)

// Adapter fetches raw business records for one planned search term.
// Implementations return provider payloads untouched; decoding is the
// normalizer's job.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, query models.Query) ([]models.RawRecord, error)
}

type factory func(cfg config.SourceConfig, log logger.Logger) Adapter

var factories = map[string]factory{
	models.SourceGooglePlaces: func(cfg config.SourceConfig, log logger.Logger) Adapter {
		return NewGooglePlacesAdapter(cfg, log)
	},
	models.SourceYelp: func(cfg config.SourceConfig, log logger.Logger) Adapter {
		return NewYelpAdapter(cfg, log)
	},
	models.SourceSerp: func(cfg config.SourceConfig, log logger.Logger) Adapter {
		return NewSerpAdapter(cfg, log)
	},
	models.SourceSynthetic: func(cfg config.SourceConfig, log logger.Logger) Adapter {
		return NewSyntheticAdapter(cfg, log)
	},
}

// Build returns the adapter registered under name, configured from cfg.
func Build(name string, cfg config.SourceConfig, log logger.Logger) (Adapter, error) {
	create, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", name)
	}
	return create(cfg, log), nil
}

// BuildEnabled constructs adapters for every source that is both enabled in
// config and, when the request names sources, requested. Unknown requested
// names are skipped rather than failing the scan.
func BuildEnabled(cfg *config.Config, requested []string, log logger.Logger) []Adapter {
	var wanted map[string]bool
	if len(requested) > 0 {
		wanted = make(map[string]bool, len(requested))
		for _, name := range requested {
			wanted[name] = true
		}
	}

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	adapters := make([]Adapter, 0, len(names))
	for _, name := range names {
		if wanted != nil && !wanted[name] {
			continue
		}
		if !config.IsSourceEnabled(cfg, name) {
			continue
		}
		adapter, err := Build(name, config.GetSourceConfig(cfg, name), log)
		if err != nil {
			continue
		}
		adapters = append(adapters, adapter)
	}
	return adapters
}
