package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooksync/backend/internal/storage"
)

func TestLoadFallsBackToBuiltIn(t *testing.T) {
	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)

	c := Load(context.Background(), kv)
	assert.Len(t, c.All(), len(BuiltIn()))
}

func TestLoadPrefersSeededSet(t *testing.T) {
	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	seeded := []Recipe{{ID: "custom-1", Title: "시그니처 찌개", Category: "한식"}}
	require.NoError(t, storage.SaveJSON(ctx, kv, storage.KeyCatalog, seeded))

	c := Load(ctx, kv)
	require.Len(t, c.All(), 1)
	r, ok := c.Get("custom-1")
	assert.True(t, ok)
	assert.Equal(t, "시그니처 찌개", r.Title)
}

func TestSeedWritesBuiltIn(t *testing.T) {
	kv, err := storage.NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, kv))

	var recipes []Recipe
	require.True(t, storage.LoadJSON(ctx, kv, storage.KeyCatalog, &recipes))
	assert.Len(t, recipes, len(BuiltIn()))
}

func TestSearch(t *testing.T) {
	c := Load(context.Background(), discardKV{})

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"all", "", "", []string{"recipe-1", "recipe-2", "recipe-3", "recipe-4"}},
		{"by title", "김치", "", []string{"recipe-1"}},
		{"by tag", "자취", "", []string{"recipe-4"}},
		{"by category", "", "양식", []string{"recipe-3"}},
		{"query and category", "찌개", "양식", nil},
		{"no match", "피자", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range c.Search(tt.query, tt.category) {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// discardKV is an always-empty KV.
type discardKV struct{}

func (discardKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (discardKV) Set(context.Context, string, []byte) error         { return nil }
func (discardKV) Delete(context.Context, string) error              { return nil }
