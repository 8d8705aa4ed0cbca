package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxColorChannels is the maximum number of channels of a color vector.
const MaxColorChannels = 4

// ErrInvalidColor is returned when a color cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is a channel vector [r, g, b, a].
//
// Red, green and blue are integers in 0..255. Alpha is the opacity in 0..1
// with two decimals, the way color controls encode it; a missing alpha
// means opaque.
type Color []float64

// Equal reports component-wise equality. Colors of different length are never equal.
func (c Color) Equal(other Color) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// String returns the comma-joined channels, which is the selection encoding.
func (c Color) String() string {
	parts := make([]string, len(c))
	for i, ch := range c {
		parts[i] = FormatNumber(ch)
	}
	return strings.Join(parts, ",")
}

// Alpha returns the alpha channel, or 1 when the color has none.
func (c Color) Alpha() float64 {
	if len(c) < 4 {
		return 1
	}
	return c[3]
}

// Hex returns #rrggbb, or #rrggbbaa when an alpha channel is present.
// Alpha is scaled from 0..1 to a byte.
func (c Color) Hex() string {
	if len(c) < 3 {
		return ""
	}
	if len(c) >= 4 {
		return fmt.Sprintf("#%02x%02x%02x%02x", toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3]*255))
	}
	return fmt.Sprintf("#%02x%02x%02x", toByte(c[0]), toByte(c[1]), toByte(c[2]))
}

// RGBA returns a CSS rgba() expression with the channels as stored.
func (c Color) RGBA() string {
	if len(c) < 3 {
		return ""
	}
	return fmt.Sprintf("rgba(%s,%s,%s,%s)",
		FormatNumber(c[0]), FormatNumber(c[1]), FormatNumber(c[2]), FormatNumber(c.Alpha()))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// ParseColor parses a comma-joined selection value into a 4-channel color.
//
// Unspecified trailing channels default to 0. More than four channels or a
// channel that is not a finite number is an error.
func ParseColor(raw string) (Color, error) {
	parts := strings.Split(raw, ",")
	if len(parts) > MaxColorChannels {
		return nil, fmt.Errorf("%w: %q has %d channels", ErrInvalidColor, raw, len(parts))
	}
	c := make(Color, MaxColorChannels)
	for i, p := range parts {
		ch, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidColor, raw, err)
		}
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			return nil, fmt.Errorf("%w: %q: channel %d is not finite", ErrInvalidColor, raw, i)
		}
		c[i] = ch
	}
	return c, nil
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA into [r, g, b, a].
//
// A missing alpha is 1. A given alpha byte is scaled to 0..1 and rounded to
// two decimals, so #RRGGBBff is also 1.
func ParseHexColor(hex string) (Color, error) {
	value := strings.TrimPrefix(hex, "#")
	if len(value) != 6 && len(value) != 8 {
		return nil, fmt.Errorf("%w: hex color has to be in the format #RRGGBB or #RRGGBBAA", ErrInvalidColor)
	}
	c := Color{0, 0, 0, 1}
	for i := 0; i < len(value)/2; i++ {
		ch, err := strconv.ParseUint(value[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidColor, hex, err)
		}
		if i == 3 {
			c[i] = math.Round(float64(ch)/255*100) / 100
			continue
		}
		c[i] = float64(ch)
	}
	return c, nil
}
