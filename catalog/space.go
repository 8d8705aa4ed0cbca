package catalog

import (
	"fmt"
	"math"

	"github.com/hupe1980/idkey/model"
)

// spaceValue converts a decoded space entry into its typed form.
func spaceValue(t model.FilterType, raw any) (model.SpaceValue, error) {
	list, ok := asList(raw)
	if !ok {
		return model.SpaceValue{}, fmt.Errorf("%w: %s expects a list, got %T", ErrInvalidSpace, t, raw)
	}

	switch t {
	case model.RangeFilter:
		if len(list) != 2 {
			return model.SpaceValue{}, fmt.Errorf("%w: range expects [min, max], got %d values", ErrInvalidSpace, len(list))
		}
		lo, okLo := toFloat(list[0])
		hi, okHi := toFloat(list[1])
		if !okLo || !okHi {
			return model.SpaceValue{}, fmt.Errorf("%w: range bounds must be numbers", ErrInvalidSpace)
		}
		if lo > hi {
			return model.SpaceValue{}, fmt.Errorf("%w: range min %v exceeds max %v", ErrInvalidSpace, lo, hi)
		}
		return model.RangeValue(lo, hi), nil

	case model.NumberFilter:
		numbers := make([]float64, 0, len(list))
		for _, v := range list {
			n, ok := toFloat(v)
			if !ok {
				return model.SpaceValue{}, fmt.Errorf("%w: %v is not a number", ErrInvalidSpace, v)
			}
			numbers = append(numbers, n)
		}
		return model.NumberValue(numbers...), nil

	case model.TextOnlyFilter, model.DescriptiveTextAndImagesFilter:
		codes := make([]string, 0, len(list))
		for _, v := range list {
			s, ok := v.(string)
			if !ok {
				return model.SpaceValue{}, fmt.Errorf("%w: %v is not a string", ErrInvalidSpace, v)
			}
			codes = append(codes, s)
		}
		return model.SpaceValue{Type: t, Codes: codes}, nil

	case model.ColorFilter:
		colors := make([]model.Color, 0, len(list))
		for _, v := range list {
			c, err := colorValue(v)
			if err != nil {
				return model.SpaceValue{}, err
			}
			colors = append(colors, c)
		}
		return model.ColorValue(colors...), nil

	default:
		return model.SpaceValue{}, fmt.Errorf("%w: %s carries no item space", ErrInvalidSpace, t)
	}
}

// colorValue decodes [r, g, b] or [r, g, b, a]. Red, green and blue must be
// integers; alpha is a fraction such as 0.5.
func colorValue(raw any) (model.Color, error) {
	channels, ok := asList(raw)
	if !ok || len(channels) < 3 || len(channels) > model.MaxColorChannels {
		return nil, fmt.Errorf("%w: color must have 3 or 4 channels, got %v", ErrInvalidSpace, raw)
	}
	c := make(model.Color, len(channels))
	for i, ch := range channels {
		f, ok := toFloat(ch)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: color channel %v is not a number", ErrInvalidSpace, ch)
		}
		if i < 3 && f != math.Trunc(f) {
			return nil, fmt.Errorf("%w: color channel %v is not an integer", ErrInvalidSpace, ch)
		}
		c[i] = f
	}
	return c, nil
}

func asList(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []float64:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
