package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonOptions_ValidateFlags(t *testing.T) {
	for _, format := range []string{"table", "json", "yaml"} {
		opts := DefaultCommonOptions()
		opts.Format = format
		assert.NoError(t, opts.ValidateFlags(), format)
	}

	opts := DefaultCommonOptions()
	opts.Format = "xml"
	err := opts.ValidateFlags()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestDefaultCommonOptions(t *testing.T) {
	opts := DefaultCommonOptions()
	assert.Equal(t, "table", opts.Format)
	assert.False(t, opts.Quiet)
}
