package match

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/idkey/model"
)

// Matcher reports whether an item's space entry satisfies the selected raw values.
//
// Matchers evaluate one entry against raw values for callers that check a
// single entry. Passes do not call them: Compile parses the
// selection once into clauses with the same semantics, and the property
// tests hold both to agreement.
type Matcher func(selected []string, entry model.SpaceValue) bool

var registry = map[model.FilterType]Matcher{
	model.RangeFilter:                    MatchRange,
	model.NumberFilter:                   MatchNumbers,
	model.TextOnlyFilter:                 MatchCodes,
	model.DescriptiveTextAndImagesFilter: MatchCodes,
	model.ColorFilter:                    MatchColors,
}

// Lookup returns the space matcher of a filter type.
// TaxonFilter has no space matcher; use MatchTaxon.
func Lookup(t model.FilterType) (Matcher, bool) {
	m, ok := registry[t]
	return m, ok
}

// MatchRange matches the first selected value against the entry's inclusive interval.
func MatchRange(selected []string, entry model.SpaceValue) bool {
	if entry.Type != model.RangeFilter {
		return false
	}
	value, ok := parseRangeSelection(selected)
	if !ok {
		return true
	}
	return inRange(value, entry)
}

// MatchNumbers requires every parsable selected number to be present on the entry.
func MatchNumbers(selected []string, entry model.SpaceValue) bool {
	if entry.Type != model.NumberFilter {
		return false
	}
	return containsAllNumbers(parseNumbers(selected), entry.Numbers)
}

// MatchCodes requires every selected code to be present on the entry.
func MatchCodes(selected []string, entry model.SpaceValue) bool {
	if entry.Type != model.TextOnlyFilter && entry.Type != model.DescriptiveTextAndImagesFilter {
		return false
	}
	return containsAllCodes(selected, entry.Codes)
}

// MatchColors matches if at least one selected color equals at least one entry color.
func MatchColors(selected []string, entry model.SpaceValue) bool {
	if entry.Type != model.ColorFilter {
		return false
	}
	colors, _ := parseColors(selected)
	return anyColorEqual(colors, entry.Colors)
}

func parseRangeSelection(selected []string) (float64, bool) {
	if len(selected) == 0 {
		return 0, false
	}
	return parseNumber(selected[0])
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseNumbers drops values that do not parse; they impose no constraint.
func parseNumbers(selected []string) []float64 {
	numbers := make([]float64, 0, len(selected))
	for _, raw := range selected {
		if n, ok := parseNumber(raw); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// parseColors returns the parsable colors and the first parse error.
// An unparsable color can match nothing, so it is dropped.
func parseColors(selected []string) ([]model.Color, error) {
	colors := make([]model.Color, 0, len(selected))
	var firstErr error
	for _, raw := range selected {
		c, err := model.ParseColor(raw)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		colors = append(colors, c)
	}
	return colors, firstErr
}

func inRange(value float64, entry model.SpaceValue) bool {
	return value >= entry.Min && value <= entry.Max
}

func containsAllNumbers(selected, have []float64) bool {
	for _, n := range selected {
		if !slices.Contains(have, n) {
			return false
		}
	}
	return true
}

func containsAllCodes(selected, have []string) bool {
	for _, code := range selected {
		if !slices.Contains(have, code) {
			return false
		}
	}
	return true
}

func anyColorEqual(selected, have []model.Color) bool {
	for _, s := range selected {
		for _, h := range have {
			if s.Equal(h) {
				return true
			}
		}
	}
	return false
}
