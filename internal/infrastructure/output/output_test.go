package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunectl-dev/tunectl/internal/domain/entities"
	"github.com/tunectl-dev/tunectl/internal/domain/values"
)

func sampleListing() *Listing {
	return NewListing([]entities.WorkloadEntry{
		entities.NewBuiltinWorkload(values.MustNewWorkloadName("webserver"), "webserver", "webserver.yaml"),
		entities.NewUserWorkload(values.MustNewWorkloadName("self_workload"), "self_profile", "./conf/example.yaml"),
	})
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(sampleListing()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "ORIGIN")

	// One entry per line with name and profile on the same line.
	var selfLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "self_workload") {
			selfLine = line
		}
	}
	require.NotEmpty(t, selfLine)
	assert.Contains(t, selfLine, "self_profile")
	assert.Contains(t, selfLine, "user-defined")
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(&Listing{}))
	assert.Contains(t, buf.String(), "No workload types defined.")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(sampleListing()))

	var decoded Listing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Workloads, 2)
	assert.Equal(t, "webserver", decoded.Workloads[0].Name)
	assert.Equal(t, "builtin", decoded.Workloads[0].Origin)
	assert.Equal(t, "self_workload", decoded.Workloads[1].Name)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(sampleListing()))

	var decoded Listing
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Workloads, 2)
	assert.Equal(t, "self_profile", decoded.Workloads[1].Profile)
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer

	for _, format := range []string{"table", "json", "yaml"} {
		f, err := NewFormatter(format, &buf)
		require.NoError(t, err, format)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("sarif", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
