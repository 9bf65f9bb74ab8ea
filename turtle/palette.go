package turtle

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

var (
	Black       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	White       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Yellow      = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	Orange      = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	Blue        = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Red         = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	SpringGreen = color.RGBA{R: 0x00, G: 0xff, B: 0x7f, A: 0xff}
	Purple      = color.RGBA{R: 0xa0, G: 0x20, B: 0xf0, A: 0xff}
	Cyan        = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	Magenta     = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	Green       = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Brown       = color.RGBA{R: 0xa5, G: 0x2a, B: 0x2a, A: 0xff}
)

// GalaxyPalette is the star and arm palette.
var GalaxyPalette = []color.RGBA{Yellow, Orange, Blue, Red, SpringGreen, Purple, Cyan, Magenta, White}

var named = map[string]color.RGBA{
	"black":       Black,
	"white":       White,
	"yellow":      Yellow,
	"orange":      Orange,
	"blue":        Blue,
	"red":         Red,
	"springgreen": SpringGreen,
	"purple":      Purple,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"green":       Green,
	"brown":       Brown,
}

// ColorNames lists the names ParseColor understands, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseColor accepts a palette name ("Spring Green", "spring_green") or a
// hex triplet ("#00ff7f").
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("turtle: bad colour %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("turtle: bad colour %q: %w", s, err)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}

	key := strings.ToLower(s)
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	if c, ok := named[key]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("turtle: unknown colour %q", s)
}
