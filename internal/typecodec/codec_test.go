package typecodec

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapecheck/internal/source"
	"shapecheck/internal/types"
)

func roundTripCases() map[string]*types.Type {
	nested := types.Module("matplotlib.pyplot", nil, map[string]*types.Type{
		"show": types.Func("show", nil),
	})
	return map[string]*types.Type{
		"empty list":        types.List(nil, true),
		"list of numbers":   types.List(types.Number(), false),
		"list of lists":     types.List(types.List(types.Text(), false), false),
		"literal mapping":   types.LiteralMapping([]types.Literal{types.TextLit("a"), types.TextLit("b")}, []*types.Type{types.Number(), types.List(types.Boolean(), false)}),
		"key-typed mapping": types.MappingOf(types.Text(), types.MappingOf(types.Number(), types.Text())),
		"empty mapping":     types.EmptyMapping(),
		"text":              types.Text(),
		"empty text":        types.EmptyText(),
		"number":            types.Number(),
		"boolean":           types.Boolean(),
		"none":              types.None(),
		"module":            types.Module("matplotlib", map[string]*types.Type{"pyplot": nested}, map[string]*types.Type{"version": types.Text()}),
		"tuple":             types.Tuple(types.Number(), types.Text()),
		"set":               types.Set(types.Number(), false),
		"generator":         types.Generator(nil, true),
		"file":              types.File(),
		"time":              types.TimeOfDay(),
		"day":               types.DayOfWeek(),
		"unknown":           types.Unknown(),
		"fixed function":    types.Func("area", types.Number()),
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for name, orig := range roundTripCases() {
		t.Run(name, func(t *testing.T) {
			data, err := TypeToJSON(orig)
			require.NoError(t, err)
			back, err := TypeFromJSON(data)
			require.NoError(t, err)
			require.Equal(t, orig.Kind, back.Kind)
			assert.True(t, Equivalent(orig, back), "round trip mismatch for %s:\n%s", data, pretty.Diff(orig, back))
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for name, orig := range roundTripCases() {
		t.Run(name, func(t *testing.T) {
			data, err := MarshalBinary(orig)
			require.NoError(t, err)
			back, err := UnmarshalBinary(data)
			require.NoError(t, err)
			assert.True(t, Equivalent(orig, back), "binary round trip mismatch:\n%s", pretty.Diff(orig, back))
		})
	}
}

func TestDecodedLiteralMappingAnswersLookups(t *testing.T) {
	data := []byte(`{"kind":"Mapping","literals":[{"kind":"LiteralText","value":"a"},{"kind":"LiteralText","value":"b"}],"values":[{"kind":"Number"},{"kind":"Text"}]}`)
	m, err := TypeFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, types.KindNumber, m.Index(types.KeyOf(types.TextLit("a"))).Kind)
	assert.Equal(t, types.KindText, m.Index(types.KeyOf(types.TextLit("b"))).Kind)
	assert.Equal(t, types.KindUnknown, m.Index(types.KeyOf(types.TextLit("z"))).Kind)
}

func TestLegacyRecords(t *testing.T) {
	data := []byte(`{"type":"DictType","literals":[{"type":"LiteralStr","value":"x"},{"type":"LiteralNum","value":3}],
		"values":[{"type":"ListType","subtype":{"type":"NumType"}},{"type":"StrType","empty":true}]}`)
	m, err := TypeFromJSON(data)
	require.NoError(t, err)
	require.Equal(t, types.MapLiteral, m.Map.Shape)
	assert.Equal(t, types.KindList, m.Index(types.KeyOf(types.TextLit("x"))).Kind)
	three := m.Index(types.KeyOf(types.NumLit(3)))
	assert.Equal(t, types.KindText, three.Kind)
	assert.True(t, three.IsEmpty())
}

func TestFunctionWireFormIsLossy(t *testing.T) {
	identity := types.IdentityFunc("passthrough")
	data, err := TypeToJSON(identity)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Function","name":"passthrough"}`, string(data))

	back, err := TypeFromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, types.EffectConst, back.Fn.Effect)
	got := back.Call(nil, "", []*types.Type{types.Number()}, source.NoLocation)
	assert.Equal(t, types.KindNone, got.Kind, "decoded functions return a constant")

	void, err := TypeToJSON(types.VoidFunc("close"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Function","name":"close","returns":{"kind":"None"}}`, string(void))
}

func TestFunctionReturnsDefaultToNone(t *testing.T) {
	f, err := TypeFromJSON([]byte(`{"kind":"Function","name":"f"}`))
	require.NoError(t, err)
	assert.Equal(t, "f", f.Name())
	assert.Equal(t, types.KindNone, f.Fn.Returns.Kind)
}

func TestErrors(t *testing.T) {
	_, err := TypeFromJSON([]byte(`{"kind":"Spaceship"}`))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = TypeFromJSON([]byte(`{"kind":"List","subtype":{"kind":"Spaceship"}}`))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = TypeFromJSON([]byte(`{"kind":"Class"}`))
	require.ErrorIs(t, err, ErrNotSerializable)

	classes := types.NewClasses(0)
	_, err = TypeToJSON(classes.Define("Dog").Instance())
	require.ErrorIs(t, err, ErrNotSerializable)

	_, err = TypeToJSON(types.List(classes.Define("Cat"), false))
	require.ErrorIs(t, err, ErrNotSerializable)

	_, err = TypeFromJSON([]byte(`not json`))
	require.Error(t, err)
	assert.False(t, Equivalent(classes.Define("A"), classes.Define("A")))
}

func TestLiterals(t *testing.T) {
	lits := []types.Literal{
		types.NumLit(2.5),
		types.NumLit(0),
		types.BoolLit(false),
		types.TextLit(""),
		types.NoneLit(),
		types.TupleLit(types.NumLit(1), types.TupleLit(types.TextLit("a"), types.BoolLit(true))),
	}
	for _, l := range lits {
		data, err := LiteralToJSON(l)
		require.NoError(t, err)
		back, err := LiteralFromJSON(data)
		require.NoError(t, err)
		assert.True(t, types.LiteralsEqual(l, back), "literal %s came back as %s (%s)", l.Repr(), back.Repr(), data)
	}

	_, err := LiteralToJSON(types.Literal{})
	require.ErrorIs(t, err, ErrNotSerializable)
	_, err = LiteralFromJSON([]byte(`{"kind":"LiteralText","value":5}`))
	require.ErrorIs(t, err, ErrMalformed)
	_, err = LiteralFromJSON([]byte(`{"kind":"LiteralComplex"}`))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestTypesFromJSONAcceptsArrays(t *testing.T) {
	many, err := TypesFromJSON([]byte(`[{"kind":"Number"},{"kind":"str"}]`))
	require.NoError(t, err)
	require.Len(t, many, 2)
	assert.Equal(t, types.KindText, many[1].Kind)

	one, err := TypesFromJSON([]byte(`{"kind":"Boolean"}`))
	require.NoError(t, err)
	require.Len(t, one, 1)
}

func TestRecordsFromJSON(t *testing.T) {
	recs, err := RecordsFromJSON([]byte("\n  [{\"kind\":\"Number\"}, {\"type\":\"Spaceship\"}]"))
	require.NoError(t, err, "records are parsed, not decoded")
	require.Len(t, recs, 2)
	assert.Equal(t, "Spaceship", recs[1].Legacy)

	recs, err = RecordsFromJSON([]byte(`{"kind":"Text","empty":true}`))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Empty)

	_, err = RecordsFromJSON([]byte(`[{"kind":`))
	require.ErrorContains(t, err, "type records")
	_, err = RecordsFromJSON([]byte(`{`))
	require.ErrorContains(t, err, "type record")
	_, err = TypesFromJSON([]byte(`42`))
	require.Error(t, err)
}
