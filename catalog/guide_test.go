package catalog

import (
	"errors"
	"os"
	"testing"

	"github.com/hupe1980/idkey/codec"
	"github.com/hupe1980/idkey/match"
	"github.com/hupe1980/idkey/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	startNode     = "5b6f5c3e-3d4c-4c3e-9a62-1d1f2b3c4d5e"
	butterflyNode = "8e1c0a52-0d7a-4f4e-8a8a-1c2d3e4f5a63"
	lengthFilter  = "0f1e2d3c-4b5a-4968-8776-655443322110"
	legsFilter    = "1a2b3c4d-5e6f-4071-8293-a4b5c6d7e8f9"
	colourFilter  = "2b3c4d5e-6f70-4182-93a4-b5c6d7e8f901"
	wingsFilter   = "3c4d5e6f-7081-4293-a4b5-c6d7e8f90112"
	groupFilter   = "4d5e6f70-8192-43a4-b5c6-d7e8f9011223"
	ladybird      = "8e1c0a52-0d7a-4f4e-8a8a-1c2d3e4f5a61"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestDecodeGuide(t *testing.T) {
	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := codec.ByName(name)
			g, err := Decode(readTestdata(t, "guide.json"), WithCodec(c), WithStrict(true))
			require.NoError(t, err)

			assert.Equal(t, "Garden Insects", g.Name)
			assert.Equal(t, startNode, g.StartNodeUUID)
			assert.Equal(t, []string{startNode, butterflyNode}, g.NodeUUIDs())
			assert.Empty(t, g.Problems())

			cat, err := g.Start()
			require.NoError(t, err)
			require.Equal(t, 3, cat.Len())

			ft, ok := cat.TypeOf(groupFilter)
			require.True(t, ok)
			assert.Equal(t, model.TaxonFilter, ft)

			names := make([]string, len(cat.Filters))
			for i, f := range cat.Filters {
				names[i] = f.Name
			}
			assert.Equal(t, []string{"Body length", "Legs", "Colour", "Wings", "Group"}, names)
			def, ok := cat.Filter(lengthFilter)
			require.True(t, ok)
			assert.Equal(t, "mm", def.Definition["unit"])
			assert.Equal(t, 3, def.Weight)

			item, ok := cat.Item(ladybird)
			require.True(t, ok)
			assert.Equal(t, model.RangeValue(5, 8), item.Space[lengthFilter])
			assert.Equal(t, model.NumberValue(6), item.Space[legsFilter])
			assert.Equal(t, model.ColorValue(model.Color{255, 0, 0, 1}, model.Color{0, 0, 0, 0.5}), item.Space[colourFilter])
			assert.Equal(t, model.DescriptiveValue("elytra"), item.Space[wingsFilter])
			assert.Equal(t, int64(11), item.ID)
			assert.Equal(t, int64(101), item.MetaNodeID)
			assert.Equal(t, "result", item.NodeType)
			assert.Equal(t, "/media/ladybird.jpg", item.ImageURL)
			require.NotNil(t, item.Taxon)
			assert.Equal(t, "001006003", item.Taxon.NUID)
			assert.Equal(t, "taxonomy.sources.col", item.Taxon.Source)
			assert.Equal(t, "Coccinella septempunctata", item.Taxon.Latname)

			group, ok := cat.Item(butterflyNode)
			require.True(t, ok)
			assert.False(t, group.HasTaxon())

			sub, err := g.Node(butterflyNode)
			require.NoError(t, err)
			assert.Equal(t, 2, sub.Len())
		})
	}
}

func TestParseSelectsNode(t *testing.T) {
	data := readTestdata(t, "guide.json")

	cat, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	cat, err = Parse(data, WithNode(butterflyNode))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = Parse(data, WithNode("missing"))
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestDecodeFlatSkipsMalformedEntries(t *testing.T) {
	g, err := Decode(readTestdata(t, "flat.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{""}, g.NodeUUIDs())
	assert.Len(t, g.Problems(), 5)

	cat, err := g.Start()
	require.NoError(t, err)

	_, ok := cat.TypeOf("broken")
	assert.False(t, ok, "unknown type names are not declared")

	beetle, _ := cat.Item("beetle")
	assert.Len(t, beetle.Space, 4, "taxon and undeclared entries are not part of the space")
	_, ok = beetle.Space["group"]
	assert.False(t, ok)

	spider, _ := cat.Item("spider")
	assert.Equal(t, model.Space{"habitat": model.TextValue("hedge", "meadow")}, spider.Space)
	assert.Nil(t, spider.Taxon)

	var unknown *model.UnknownFilterTypeError
	var verr *ValidationError
	joined := errors.Join(g.Problems()...)
	assert.ErrorAs(t, joined, &unknown)
	assert.ErrorIs(t, joined, ErrInvalidSpace)
	assert.ErrorIs(t, joined, ErrInvalidTaxon)
	require.ErrorAs(t, joined, &verr)
}

func TestUndeclaredSpaceIsNeverPossible(t *testing.T) {
	cat, err := Parse(readTestdata(t, "flat.json"))
	require.NoError(t, err)

	res := match.Evaluate(cat, nil)
	assert.Empty(t, res.Possible.Values("unknown"))
	assert.Empty(t, res.Possible.Values("group"))
	assert.Equal(t, []string{"255,0,0,1"}, res.Possible.Values("colour"))
}

func TestDecodeStrict(t *testing.T) {
	_, err := Decode(readTestdata(t, "flat.json"), WithStrict(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUUID)
	assert.ErrorIs(t, err, ErrUndeclaredFilter)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(readTestdata(t, "guide.json"), WithStrict(true)))

	err := Validate(readTestdata(t, "flat.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidUUID)

	strictErr := Validate(readTestdata(t, "flat.json"), WithStrict(true))
	assert.ErrorIs(t, strictErr, ErrInvalidUUID)
	assert.Len(t, strictErr.(interface{ Unwrap() []error }).Unwrap(), 13)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Node: "n", Item: "i", FilterID: "f", Err: ErrInvalidSpace, Reason: "range min 5 exceeds max 2"}
	assert.Equal(t, "catalog: node n: item i: filter f: invalid space entry: range min 5 exceeds max 2", err.Error())
	assert.ErrorIs(t, err, ErrInvalidSpace)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte(`{}`))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Decode([]byte(`{"items": [`))
	assert.Error(t, err)
}

func TestDefinitionTypeConflict(t *testing.T) {
	data := []byte(`{
		"matrix_filter_types": {"a": "NumberFilter"},
		"matrix_filters": [{"uuid": "a", "filter_type": "RangeFilter"}, {"uuid": "b", "type": "ColorFilter"}],
		"items": [{"uuid": "x", "space": {"a": [1], "b": [[1, 2, 3]]}}]
	}`)

	g, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, g.Problems(), 1)
	assert.ErrorIs(t, g.Problems()[0], ErrTypeConflict)

	cat, _ := g.Start()
	ft, _ := cat.TypeOf("a")
	assert.Equal(t, model.NumberFilter, ft, "the declared type wins")
	ft, _ = cat.TypeOf("b")
	assert.Equal(t, model.ColorFilter, ft, "definitions declare missing types")

	x, _ := cat.Item("x")
	assert.Equal(t, model.ColorValue(model.Color{1, 2, 3}), x.Space["b"])
}
