package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tunectl-dev/tunectl/internal/domain/registry"
)

func TestUndefineMessage(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		msg := undefineMessage(registry.Removed, "self_workload")
		assert.Contains(t, msg, "self_workload")
		assert.Contains(t, msg, "successfully")
	})

	t.Run("builtin rejection", func(t *testing.T) {
		msg := undefineMessage(registry.RejectedBuiltin, "webserver")
		assert.Contains(t, msg, "only self defined workload type can be deleted")
	})

	t.Run("not found rejection", func(t *testing.T) {
		msg := undefineMessage(registry.RejectedNotFound, "garbage")
		assert.Contains(t, msg, "may be not exist in the table")
	})
}
