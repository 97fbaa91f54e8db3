package services

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
)

// Collector runs the registered system probes and merges their facts into
// one environment for classification.
type Collector struct {
	probers []ports.Prober
	logger  *slog.Logger
}

// NewCollector creates a collector over the given probes.
func NewCollector(probers []ports.Prober, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{probers: probers, logger: logger}
}

// Collect runs all probes concurrently and merges their facts. A probe
// failure fails the whole collection; facts are never partial.
func (c *Collector) Collect(ctx context.Context) (map[string]interface{}, error) {
	facts := make(map[string]interface{})
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	for _, p := range c.probers {
		g.Go(func() error {
			collected, err := p.Collect(ctx)
			if err != nil {
				return err
			}

			c.logger.Debug("probe completed", "probe", p.Name(), "facts", len(collected))

			mu.Lock()
			defer mu.Unlock()
			for k, v := range collected {
				facts[k] = v
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return facts, nil
}
