package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunectl-dev/tunectl/internal/domain/entities"
	"github.com/tunectl-dev/tunectl/internal/domain/values"
)

func TestWorkloadStore_SaveAndLoad(t *testing.T) {
	store := NewWorkloadStore()
	ctx := context.Background()

	entries, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	saved := []entities.WorkloadEntry{
		entities.NewUserWorkload(values.MustNewWorkloadName("self_workload"), "self_profile", "p.yaml"),
	}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "self_workload", loaded[0].Name.String())
}

func TestWorkloadStore_LoadReturnsCopy(t *testing.T) {
	store := NewWorkloadStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, []entities.WorkloadEntry{
		entities.NewUserWorkload(values.MustNewWorkloadName("a"), "p", "p.yaml"),
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	loaded[0].ProfileName = "mutated"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p", again[0].ProfileName)
}
