package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
)

type stubProber struct {
	name  string
	facts map[string]interface{}
	err   error
}

func (p *stubProber) Name() string { return p.name }

func (p *stubProber) Collect(_ context.Context) (map[string]interface{}, error) {
	return p.facts, p.err
}

func TestCollector_MergesFacts(t *testing.T) {
	c := NewCollector([]ports.Prober{
		&stubProber{name: "a", facts: map[string]interface{}{"hugepages": 1}},
		&stubProber{name: "b", facts: map[string]interface{}{"mtu": map[string]interface{}{"eth0": 1500}}},
	}, nil)

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, facts["hugepages"])
	assert.Contains(t, facts, "mtu")
}

func TestCollector_FailsWhenAnyProbeFails(t *testing.T) {
	probeErr := errors.New("meminfo unreadable")
	c := NewCollector([]ports.Prober{
		&stubProber{name: "ok", facts: map[string]interface{}{"hugepages": 0}},
		&stubProber{name: "bad", err: probeErr},
	}, nil)

	_, err := c.Collect(context.Background())
	require.ErrorIs(t, err, probeErr)
}

func TestCollector_NoProbes(t *testing.T) {
	c := NewCollector(nil, nil)

	facts, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, facts)
}
