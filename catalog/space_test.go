package catalog

import (
	"testing"

	"github.com/hupe1980/idkey/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceValue(t *testing.T) {
	tests := []struct {
		name string
		typ  model.FilterType
		raw  any
		want model.SpaceValue
	}{
		{"Range", model.RangeFilter, []any{1.5, 4.0}, model.RangeValue(1.5, 4)},
		{"RangePoint", model.RangeFilter, []any{2.0, 2.0}, model.RangeValue(2, 2)},
		{"Numbers", model.NumberFilter, []any{2.0, 5.0, 7.0}, model.NumberValue(2, 5, 7)},
		{"NumbersTyped", model.NumberFilter, []float64{1, 2}, model.NumberValue(1, 2)},
		{"Text", model.TextOnlyFilter, []any{"a", "b"}, model.TextValue("a", "b")},
		{"Descriptive", model.DescriptiveTextAndImagesFilter, []string{"a"}, model.DescriptiveValue("a")},
		{"Colors", model.ColorFilter, []any{[]any{255.0, 0.0, 0.0, 1.0}, []int{1, 2, 3}}, model.ColorValue(model.Color{255, 0, 0, 1}, model.Color{1, 2, 3})},
		{"ColorFractionalAlpha", model.ColorFilter, []any{[]any{0.0, 0.0, 0.0, 0.5}}, model.ColorValue(model.Color{0, 0, 0, 0.5})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := spaceValue(tt.typ, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpaceValueInvalid(t *testing.T) {
	tests := []struct {
		name string
		typ  model.FilterType
		raw  any
	}{
		{"NotAList", model.NumberFilter, 3.0},
		{"RangeArity", model.RangeFilter, []any{1.0}},
		{"RangeNotNumbers", model.RangeFilter, []any{"1", "2"}},
		{"RangeInverted", model.RangeFilter, []any{5.0, 2.0}},
		{"NumberString", model.NumberFilter, []any{"six"}},
		{"TextNumber", model.TextOnlyFilter, []any{1.0}},
		{"ColorTooShort", model.ColorFilter, []any{[]any{1.0, 2.0}}},
		{"ColorTooLong", model.ColorFilter, []any{[]any{1.0, 2.0, 3.0, 4.0, 5.0}}},
		{"ColorFractionalChannel", model.ColorFilter, []any{[]any{1.0, 2.5, 3.0, 1.0}}},
		{"ColorNotNumber", model.ColorFilter, []any{[]any{1.0, 2.0, 3.0, "opaque"}}},
		{"ColorNotList", model.ColorFilter, []any{"#ff0000"}},
		{"Taxon", model.TaxonFilter, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := spaceValue(tt.typ, tt.raw)
			assert.ErrorIs(t, err, ErrInvalidSpace)
		})
	}
}
