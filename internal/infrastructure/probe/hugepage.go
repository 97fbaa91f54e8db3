package probe

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tunectl-dev/tunectl/internal/application/ports"
)

// Ensure interface compliance
var _ ports.Prober = (*HugepageProbe)(nil)

// HugepageProbe reports whether huge pages are configured on the host.
// It publishes "hugepages" (0 or 1) and "hugepages_total".
//
// The 0/1 flag is also cached in a marker file at a fixed path; while the
// marker exists the probe serves the cached flag instead of re-reading
// /proc/meminfo.
type HugepageProbe struct {
	meminfoPath string
	markerPath  string
}

// NewHugepageProbe creates a probe caching its flag at markerPath.
func NewHugepageProbe(markerPath string) *HugepageProbe {
	return &HugepageProbe{
		meminfoPath: "/proc/meminfo",
		markerPath:  markerPath,
	}
}

// NewHugepageProbeAt creates a probe reading an alternate meminfo file.
// Used by tests.
func NewHugepageProbeAt(meminfoPath, markerPath string) *HugepageProbe {
	return &HugepageProbe{
		meminfoPath: meminfoPath,
		markerPath:  markerPath,
	}
}

// Name identifies the probe.
func (p *HugepageProbe) Name() string {
	return "hugepage"
}

// Collect returns the huge-page facts, preferring the cached marker.
func (p *HugepageProbe) Collect(_ context.Context) (map[string]interface{}, error) {
	if flag, ok := p.readMarker(); ok {
		return map[string]interface{}{"hugepages": flag}, nil
	}

	total, err := p.readTotal()
	if err != nil {
		return nil, err
	}

	flag := 0
	if total > 0 {
		flag = 1
	}

	p.writeMarker(flag)

	return map[string]interface{}{
		"hugepages":       flag,
		"hugepages_total": total,
	}, nil
}

// readTotal parses HugePages_Total out of meminfo.
func (p *HugepageProbe) readTotal() (int, error) {
	f, err := os.Open(p.meminfoPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", p.meminfoPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "HugePages_Total:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, "HugePages_Total:"))
		total, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("unexpected HugePages_Total value %q: %w", value, err)
		}
		return total, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", p.meminfoPath, err)
	}

	return 0, fmt.Errorf("HugePages_Total not found in %s", p.meminfoPath)
}

// readMarker returns the cached flag when a valid marker exists.
func (p *HugepageProbe) readMarker() (int, bool) {
	if p.markerPath == "" {
		return 0, false
	}
	data, err := os.ReadFile(p.markerPath)
	if err != nil {
		return 0, false
	}
	flag, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || (flag != 0 && flag != 1) {
		return 0, false
	}
	return flag, true
}

// writeMarker caches the flag. Failure to cache is not a probe failure.
func (p *HugepageProbe) writeMarker(flag int) {
	if p.markerPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(p.markerPath), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(p.markerPath, []byte(strconv.Itoa(flag)+"\n"), 0o644)
}
