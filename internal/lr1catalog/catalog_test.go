package lr1catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func Test_Catalog_PutAndGet(t *testing.T) {
	c := openMemCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "expr", "S -> E\nE -> id"))

	e, err := c.Get(ctx, "expr")
	require.NoError(t, err)
	assert.Equal(t, "expr", e.Name)
	assert.Equal(t, "S -> E\nE -> id", e.Text)
}

func Test_Catalog_GetMissingReturnsErrNotFound(t *testing.T) {
	c := openMemCatalog(t)
	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Catalog_PutReplacesExisting(t *testing.T) {
	c := openMemCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "expr", "first"))
	require.NoError(t, c.Put(ctx, "expr", "second"))

	e, err := c.Get(ctx, "expr")
	require.NoError(t, err)
	assert.Equal(t, "second", e.Text)
}

func Test_Catalog_ListIsAlphabetical(t *testing.T) {
	c := openMemCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "zeta", "z"))
	require.NoError(t, c.Put(ctx, "alpha", "a"))

	names, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}
