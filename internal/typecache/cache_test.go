package typecache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"shapecheck/internal/typecodec"
	"shapecheck/internal/types"
)

func TestSumDependsOnNameAndContent(t *testing.T) {
	a := Sum("a.json", []byte(`{"kind":"Number"}`))
	assert.False(t, a.IsZero())
	assert.Equal(t, a, Sum("a.json", []byte(`{"kind":"Number"}`)))
	assert.NotEqual(t, a, Sum("b.json", []byte(`{"kind":"Number"}`)))
	assert.NotEqual(t, a, Sum("a.json", []byte(`{"kind":"Text"}`)))
	assert.Len(t, a.String(), 64)
}

func TestPutGetRoundTrip(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	rec, err := typecodec.Encode(types.LiteralMapping(
		[]types.Literal{types.TextLit("a")}, []*types.Type{types.List(types.Number(), false)}))
	require.NoError(t, err)
	key := Sum("scores.json", []byte("payload"))
	require.NoError(t, c.Put(key, &Entry{Source: "scores.json", Records: []*typecodec.Record{rec}}))

	got, ok, err := c.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "scores.json", got.Source)
	require.Len(t, got.Records, 1)

	back, err := typecodec.Decode(got.Records[0])
	require.NoError(t, err)
	assert.Equal(t, types.KindList, back.Index(types.KeyOf(types.TextLit("a"))).Kind)

	entries, err := os.ReadDir(filepath.Join(c.Dir(), "types"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestMissAndSchemaMismatch(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := c.Get(Sum("nothing", nil))
	require.NoError(t, err)
	assert.False(t, ok)

	key := Sum("old", nil)
	data, err := msgpack.Marshal(&Entry{Schema: schemaVersion + 1, Source: "old"})
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(c.pathFor(key)), 0o755))
	require.NoError(t, os.WriteFile(c.pathFor(key), data, 0o600))
	_, ok, err = c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(c.pathFor(key), []byte{0xc1}, 0o600))
	_, _, err = c.Get(key)
	assert.Error(t, err)
}

func TestDropAll(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	key := Sum("x", []byte("x"))
	require.NoError(t, c.Put(key, &Entry{Source: "x"}))

	require.NoError(t, c.DropAll())
	_, ok, err := c.Get(key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(key, &Entry{Source: "x"}), "cache stays usable after a drop")
}

func TestNilCacheIsInert(t *testing.T) {
	var c *Cache
	require.NoError(t, c.Put(Digest{}, &Entry{}))
	_, ok, err := c.Get(Digest{})
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.DropAll())
	assert.Empty(t, c.Dir())
}
