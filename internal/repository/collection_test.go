package repository

import (
	"testing"

	"edumarket/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string `json:"id"`
	Group string `json:"group"`
	Value int    `json:"value"`
}

func newItems(t *testing.T) (*Collection[item], storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	return NewCollection(backend, "items", func(i item) string { return i.ID }), backend
}

func TestCollectionListAbsentKey(t *testing.T) {
	items, _ := newItems(t)

	got, err := items.List()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	exists, err := items.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCollectionUpsert(t *testing.T) {
	items, _ := newItems(t)
	require.NoError(t, items.Upsert(item{ID: "a", Value: 1}))
	require.NoError(t, items.Upsert(item{ID: "b", Value: 2}))
	require.NoError(t, items.Upsert(item{ID: "c", Value: 3}))

	t.Run("existing id replaces in place", func(t *testing.T) {
		require.NoError(t, items.Upsert(item{ID: "b", Value: 20}))

		got, err := items.List()
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, item{ID: "b", Value: 20}, got[1])
	})

	t.Run("new id appends exactly one", func(t *testing.T) {
		require.NoError(t, items.Upsert(item{ID: "d", Value: 4}))

		got, err := items.List()
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "d", got[3].ID)
	})
}

func TestCollectionFindBy(t *testing.T) {
	items, _ := newItems(t)
	for _, it := range []item{
		{ID: "1", Group: "x"},
		{ID: "2", Group: "y"},
		{ID: "3", Group: "x"},
		{ID: "4", Group: "x"},
	} {
		require.NoError(t, items.Upsert(it))
	}

	got, err := items.FindBy(func(i item) bool { return i.Group == "x" })
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, it := range got {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"1", "3", "4"}, ids)
}

func TestCollectionFind(t *testing.T) {
	items, _ := newItems(t)
	require.NoError(t, items.Upsert(item{ID: "a", Value: 7}))

	found, err := items.Find("a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 7, found.Value)

	missing, err := items.Find("zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCollectionMalformedData(t *testing.T) {
	items, backend := newItems(t)
	require.NoError(t, backend.Set("items", []byte("{not json")))

	_, err := items.List()
	assert.ErrorContains(t, err, "failed to decode items")

	err = items.Upsert(item{ID: "a"})
	assert.Error(t, err, "writes must not clobber undecodable data")

	raw, _, _ := backend.Get("items")
	assert.Equal(t, "{not json", string(raw))
}

func TestCollectionNullDecodesEmpty(t *testing.T) {
	items, backend := newItems(t)
	require.NoError(t, backend.Set("items", []byte("null")))

	got, err := items.List()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectionReplaceAll(t *testing.T) {
	items, backend := newItems(t)
	require.NoError(t, items.ReplaceAll(nil))

	raw, found, err := backend.Get("items")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(raw))
}
