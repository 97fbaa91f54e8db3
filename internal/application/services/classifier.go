package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
	"github.com/tunectl-dev/tunectl/internal/domain/entities"
)

// Candidate is one workload type whose selection rule matched the host.
type Candidate struct {
	Name    string `json:"name" yaml:"name"`
	Profile string `json:"profile" yaml:"profile"`
	Weight  int    `json:"weight" yaml:"weight"`
	Rule    string `json:"rule" yaml:"rule"`
}

// Classifier evaluates workload selection rules against collected host
// facts and ranks the matches.
type Classifier struct {
	profiles ports.ProfileStore
	logger   *slog.Logger
}

// NewClassifier creates a classifier backed by the given profile store.
func NewClassifier(profiles ports.ProfileStore, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{profiles: profiles, logger: logger}
}

// Rank evaluates every entry's selection rule against the fact environment
// and returns the matches ordered by weight, heaviest first. A rule that
// fails to compile or run only disqualifies its own entry.
func (c *Classifier) Rank(ctx context.Context, entries []entities.WorkloadEntry, facts map[string]interface{}) []Candidate {
	var candidates []Candidate

	for _, entry := range entries {
		profile, err := c.profiles.Resolve(ctx, entry.ProfileSource)
		if err != nil {
			c.logger.Warn("skipping workload with unresolvable profile",
				"name", entry.Name.String(), "source", entry.ProfileSource, "error", err)
			continue
		}
		if profile.Selection == nil {
			continue
		}

		program, err := expr.Compile(profile.Selection.Rule, expr.Env(facts), expr.AsBool())
		if err != nil {
			c.logger.Warn("selection rule does not compile",
				"name", entry.Name.String(), "rule", profile.Selection.Rule, "error", err)
			continue
		}

		matched, err := expr.Run(program, facts)
		if err != nil {
			c.logger.Warn("selection rule failed to run",
				"name", entry.Name.String(), "error", err)
			continue
		}

		if ok, _ := matched.(bool); ok {
			candidates = append(candidates, Candidate{
				Name:    entry.Name.String(),
				Profile: entry.ProfileName,
				Weight:  profile.Selection.Weight,
				Rule:    profile.Selection.Rule,
			})
		}
	}

	// Heaviest first; name breaks ties so output is deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Weight != candidates[j].Weight {
			return candidates[i].Weight > candidates[j].Weight
		}
		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}
