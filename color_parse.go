package swcanvas

import (
	"math"
	"strconv"
	"strings"
)

// ParseColor interprets a CSS-style color string and never fails:
// anything unknown or malformed deterministically parses as opaque
// black, which downstream consumers accept as ordinary input. The
// fallback is reported at Warn level through the package logger.
//
// Supported forms:
//   - "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"
//   - "rgb(r, g, b)" with integer channels clamped to [0, 255]
//   - "rgba(r, g, b, a)" with alpha as a float clamped to [0, 1]
//   - CSS Color Level 4 keyword names, plus "transparent"
//
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseColor(s string) Color {
	c, ok := parseColor(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		Logger().Warn("unparseable color, using black", "input", s)
		return Black
	}
	return c
}

func parseColor(s string) (Color, bool) {
	switch {
	case s == "transparent":
		return Transparent, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4:len(s)-1], false)
	}
	if v, ok := cssNames[s]; ok {
		return Color{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
	}
	return Color{}, false
}

// straightColor premultiplies straight components known to be in range.
func straightColor(r, g, b, a int) Color {
	return Color{
		r: uint8(mulDiv255(r, a)),
		g: uint8(mulDiv255(g, a)),
		b: uint8(mulDiv255(b, a)),
		a: uint8(a),
	}
}

func parseHexColor(hex string) (Color, bool) {
	switch len(hex) {
	case 3: // RGB, one nibble per channel
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{uint8(r * 17), uint8(g * 17), uint8(b * 17), 255}, true
	case 4: // RGBA
		r, ok1 := hexNibble(hex[0])
		g, ok2 := hexNibble(hex[1])
		b, ok3 := hexNibble(hex[2])
		a, ok4 := hexNibble(hex[3])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Color{}, false
		}
		return straightColor(r*17, g*17, b*17, a*17), true
	case 6: // RRGGBB
		r, ok1 := hexByte(hex[0:2])
		g, ok2 := hexByte(hex[2:4])
		b, ok3 := hexByte(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{uint8(r), uint8(g), uint8(b), 255}, true
	case 8: // RRGGBBAA
		r, ok1 := hexByte(hex[0:2])
		g, ok2 := hexByte(hex[2:4])
		b, ok3 := hexByte(hex[4:6])
		a, ok4 := hexByte(hex[6:8])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Color{}, false
		}
		return straightColor(r, g, b, a), true
	}
	return Color{}, false
}

func hexNibble(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}

func hexByte(s string) (int, bool) {
	hi, ok1 := hexNibble(s[0])
	lo, ok2 := hexNibble(s[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func parseRGBFunc(args string, hasAlpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return Color{}, false
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return Color{}, false
		}
		ch[i] = clampComponent(v)
	}

	a := 255
	if hasAlpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(f) {
			return Color{}, false
		}
		f = math.Min(math.Max(f, 0), 1)
		a = int(math.Round(f * 255))
	}
	return straightColor(ch[0], ch[1], ch[2], a), true
}

func clampComponent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
