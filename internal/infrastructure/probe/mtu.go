// Package probe implements the system probes feeding host classification.
package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
)

// Ensure interface compliance
var _ ports.Prober = (*MTUProbe)(nil)

// MTUProbe reads interface MTUs from sysfs. It publishes the fact "mtu":
// a map from interface name to its MTU value.
type MTUProbe struct {
	sysClassNet string
	interfaces  []string // empty means all
}

// NewMTUProbe creates a probe over /sys/class/net. When interfaces is
// non-empty, only those are read.
func NewMTUProbe(interfaces ...string) *MTUProbe {
	return &MTUProbe{
		sysClassNet: "/sys/class/net",
		interfaces:  interfaces,
	}
}

// NewMTUProbeAt creates a probe rooted at an alternate sysfs path.
// Used by tests.
func NewMTUProbeAt(root string, interfaces ...string) *MTUProbe {
	return &MTUProbe{
		sysClassNet: root,
		interfaces:  interfaces,
	}
}

// Name identifies the probe.
func (p *MTUProbe) Name() string {
	return "mtu"
}

// Collect reads the MTU of each interface.
func (p *MTUProbe) Collect(_ context.Context) (map[string]interface{}, error) {
	names := p.interfaces
	if len(names) == 0 {
		listed, err := p.listInterfaces()
		if err != nil {
			return nil, err
		}
		names = listed
	}

	mtus := make(map[string]interface{}, len(names))
	for _, name := range names {
		mtu, err := p.readMTU(name)
		if err != nil {
			return nil, err
		}
		mtus[name] = mtu
	}

	return map[string]interface{}{"mtu": mtus}, nil
}

func (p *MTUProbe) listInterfaces() ([]string, error) {
	dirs, err := os.ReadDir(p.sysClassNet)
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}

	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.Name())
	}
	return names, nil
}

func (p *MTUProbe) readMTU(name string) (int, error) {
	data, err := os.ReadFile(filepath.Join(p.sysClassNet, name, "mtu"))
	if err != nil {
		return 0, fmt.Errorf("failed to read mtu for %s: %w", name, err)
	}

	mtu, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("unexpected mtu value for %s: %w", name, err)
	}
	return mtu, nil
}
